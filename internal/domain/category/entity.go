package category

import (
	"time"
)

// Category 分类实体(聚合根)
// 设计说明:
// 1. 名称全局唯一(不区分大小写,数据库层有唯一索引兜底)
// 2. 不持有图书集合引用,需要图书列表时通过book.Repository按分类查询
// 3. 删除是逻辑删除:IsActive置为false
type Category struct {
	ID          uint
	Name        string // 分类名称
	Description string // 分类描述
	ImageURL    string // 分类图片URL
	IsActive    bool   // 启用标记(软删除)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建新分类(工厂方法)
func NewCategory(name, description, imageURL string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Deactivate 停用(软删除)
func (c *Category) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}
