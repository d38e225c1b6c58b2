package order

import (
	"context"
)

// Repository 订单仓储接口
// 设计说明:
// 1. 订单和明细必须在同一事务中创建/删除(通过context传递事务)
// 2. 查询都携带明细(订单必须完整加载,不存在无明细视图)
type Repository interface {
	// Create 创建订单(包含订单明细)
	Create(ctx context.Context, o *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// List 查询全部订单,按下单时间倒序
	List(ctx context.Context) ([]*Order, error)

	// ListByUserID 查询用户的订单列表,按下单时间倒序
	ListByUserID(ctx context.Context, userID uint) ([]*Order, error)

	// UpdateStatus 更新订单状态
	UpdateStatus(ctx context.Context, o *Order) error

	// Delete 删除订单及其明细(必须在事务中调用,库存回补由调用方完成)
	Delete(ctx context.Context, id uint) error
}
