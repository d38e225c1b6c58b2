package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 只保存CategoryID外键,不持有Category对象引用(避免循环引用)
// 3. 删除是逻辑删除:IsActive置为false,行不物理删除
type Book struct {
	ID          uint
	Title       string // 书名
	Author      string // 作者
	Description string // 图书描述
	Price       int64  // 价格(单位:分,1元=100分)
	ImageURL    string // 封面图片URL
	Stock       int    // 库存数量
	IsActive    bool   // 上架标记(软删除)
	CategoryID  uint   // 所属分类ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(title, author, description string, price int64, imageURL string, stock int, categoryID uint) *Book {
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		Stock:       stock,
		IsActive:    true,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Deactivate 下架(软删除)
func (b *Book) Deactivate() {
	b.IsActive = false
	b.UpdatedAt = time.Now()
}

// DecrStock 扣减库存(用于订单创建)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock(b.ID, quantity, b.Stock)
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}
