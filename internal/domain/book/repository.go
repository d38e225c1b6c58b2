package book

import (
	"context"
)

// ListParams 图书列表查询参数
type ListParams struct {
	CategoryID uint   // 按分类过滤(0表示不过滤)
	Keyword    string // 搜索关键词(书名、作者)
	MinPrice   int64  // 最低价格(分,0表示不限)
	MaxPrice   int64  // 最高价格(分,0表示不限)
}

// Repository 图书仓储接口(依赖倒置)
// 由domain层定义接口,infrastructure层实现
// 读取约定:List/ListByCategory只返回上架图书,FindByID不过滤上架标记
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查找图书(包含已下架图书)
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByIDs 批量查找图书(包含已下架图书,用于订单投影)
	FindByIDs(ctx context.Context, ids []uint) ([]*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, b *Book) error

	// Deactivate 软删除(IsActive置false)
	Deactivate(ctx context.Context, id uint) error

	// List 查询上架图书列表
	List(ctx context.Context, params ListParams) ([]*Book, error)

	// ListByCategory 查询某分类下的上架图书
	ListByCategory(ctx context.Context, categoryID uint) ([]*Book, error)

	// LockByID 悲观锁查询图书(SELECT FOR UPDATE,必须在事务中调用)
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 原子更新库存(delta可正可负,扣减后库存不能为负)
	UpdateStock(ctx context.Context, id uint, delta int) error
}
