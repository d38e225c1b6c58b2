package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// UpdateOrderStatusUseCase 订单状态更新用例
// 五种合法状态之间不限制流转方向,只校验取值合法性
type UpdateOrderStatusUseCase struct {
	orderRepo order.Repository
}

// NewUpdateOrderStatusUseCase 创建状态更新用例
func NewUpdateOrderStatusUseCase(orderRepo order.Repository) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{orderRepo: orderRepo}
}

// Execute 执行状态更新
// 先校验状态取值再查订单:非法取值不应产生任何数据库读写
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, orderID uint, rawStatus string) error {
	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := o.SetStatus(status); err != nil {
		return err
	}

	return uc.orderRepo.UpdateStatus(ctx, o)
}
