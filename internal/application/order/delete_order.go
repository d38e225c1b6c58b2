package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// DeleteOrderUseCase 订单删除用例
// 删除订单时按明细数量回补图书库存,回补和删除在同一事务中完成
type DeleteOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager TxManager
}

// NewDeleteOrderUseCase 创建订单删除用例
func NewDeleteOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager TxManager,
) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// Execute 执行订单删除
// 回补是尽力而为:明细引用的图书已不存在时跳过该项,
// 其余明细照常回补,订单删除不因此失败
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, orderID uint) error {
	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}

		for _, item := range o.Items {
			err := uc.bookRepo.UpdateStock(txCtx, item.BookID, item.Quantity)
			if err != nil {
				if apperrors.IsNotFound(err) {
					continue
				}
				return err
			}
		}

		return uc.orderRepo.Delete(txCtx, o.ID)
	})
}
