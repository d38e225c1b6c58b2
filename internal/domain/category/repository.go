package category

import (
	"context"
)

// Repository 分类仓储接口
// 读取约定:List只返回启用分类,FindByID不过滤启用标记
type Repository interface {
	// Create 创建分类
	Create(ctx context.Context, c *Category) error

	// FindByID 根据ID查找分类(包含已停用分类)
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByName 根据名称查找分类(不区分大小写,用于重名检查)
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindByIDs 批量查找分类(包含已停用分类,用于图书投影)
	FindByIDs(ctx context.Context, ids []uint) ([]*Category, error)

	// ExistsByID 判断分类是否存在
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Update 更新分类信息
	Update(ctx context.Context, c *Category) error

	// Deactivate 软删除(IsActive置false)
	Deactivate(ctx context.Context, id uint) error

	// List 查询启用分类列表
	List(ctx context.Context) ([]*Category, error)
}
