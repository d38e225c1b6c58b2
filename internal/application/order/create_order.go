package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/user"
)

// TxManager 事务管理器接口
// mysql.TxManager是生产实现,测试中用内存快照实现替换
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateOrderUseCase 创建订单用例
// 设计说明:这是整个系统最核心的用例
// 校验、价格快照、订单写入、库存扣减必须在一个事务里完成,
// 任何一步失败整体回滚,不会出现"扣了库存没有订单"的中间态
type CreateOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	userRepo  user.Repository
	txManager TxManager
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	txManager TxManager,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	UserID          uint              // 买家用户ID
	ShippingAddress string            // 收货地址(可为空)
	Items           []CreateOrderItem // 订单明细
}

// CreateOrderItem 下单明细项
type CreateOrderItem struct {
	BookID   uint // 图书ID
	Quantity int  // 购买数量
}

// Execute 执行下单用例
//
// 防止超卖的完整流程(悲观锁):
//  1. SELECT FOR UPDATE 逐本锁定图书行
//  2. 先校验全部明细(图书存在、库存充足),任何一项失败立即返回,不产生写入
//  3. 以锁定时的数据库价格为快照创建订单(防止前端改价)
//  4. 逐项原子扣减库存
//  5. COMMIT释放锁
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if req.UserID == 0 {
		return nil, order.ErrInvalidUserID
	}
	if len(req.Items) == 0 {
		return nil, order.ErrEmptyItems
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
	}

	buyer, err := uc.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var created *order.Order
	bookMap := make(map[uint]*book.Book)

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 先校验全部明细,再做任何写入
		// 第一项失败就停:后续图书不锁、订单不建、库存不动
		for _, item := range req.Items {
			b, err := uc.bookRepo.LockByID(txCtx, item.BookID)
			if err != nil {
				return err
			}

			// 实体先校验并预扣,数据库侧的原子UPDATE在下面兜底
			if err := b.DecrStock(item.Quantity); err != nil {
				return err
			}

			bookMap[item.BookID] = b
		}

		// 价格快照:用锁定时的数据库价格,不信任请求携带的价格
		orderItems := make([]order.OrderItem, len(req.Items))
		for i, item := range req.Items {
			orderItems[i] = order.NewOrderItem(item.BookID, item.Quantity, bookMap[item.BookID].Price)
		}

		newOrder := order.NewOrder(req.UserID, req.ShippingAddress, orderItems)

		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 扣减库存,任何一项失败整个事务回滚
		for _, item := range req.Items {
			if err := uc.bookRepo.UpdateStock(txCtx, item.BookID, -item.Quantity); err != nil {
				return err
			}
		}

		created = newOrder
		return nil
	})

	if err != nil {
		return nil, err
	}

	return toOrderResponse(created, buyer, bookMap), nil
}
