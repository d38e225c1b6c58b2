package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/user"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// GetOrderUseCase 订单详情用例
type GetOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	userRepo  user.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository, bookRepo book.Repository, userRepo user.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
	}
}

// Execute 执行订单详情查询
func (uc *GetOrderUseCase) Execute(ctx context.Context, id uint) (*OrderResponse, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	buyer, err := uc.findBuyer(ctx, o.UserID)
	if err != nil {
		return nil, err
	}

	bookMap, err := loadBooks(ctx, uc.bookRepo, []*order.Order{o})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(o, buyer, bookMap), nil
}

// findBuyer 查询买家,用户已不存在时投影省略买家摘要
func (uc *GetOrderUseCase) findBuyer(ctx context.Context, userID uint) (*user.User, error) {
	buyer, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return buyer, nil
}

// ListOrdersUseCase 订单列表用例(全量,管理端)
type ListOrdersUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	userRepo  user.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository, bookRepo book.Repository, userRepo user.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
	}
}

// Execute 执行订单列表查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context) ([]*OrderResponse, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return assembleOrders(ctx, uc.bookRepo, uc.userRepo, orders)
}

// ListUserOrdersUseCase 用户订单列表用例
type ListUserOrdersUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	userRepo  user.Repository
}

// NewListUserOrdersUseCase 创建用户订单列表用例
func NewListUserOrdersUseCase(orderRepo order.Repository, bookRepo book.Repository, userRepo user.Repository) *ListUserOrdersUseCase {
	return &ListUserOrdersUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
	}
}

// Execute 执行用户订单列表查询
func (uc *ListUserOrdersUseCase) Execute(ctx context.Context, userID uint) ([]*OrderResponse, error) {
	orders, err := uc.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return assembleOrders(ctx, uc.bookRepo, uc.userRepo, orders)
}

// assembleOrders 批量组装订单投影
// 图书一次性批查,买家按UserID去重后逐个查并缓存
func assembleOrders(ctx context.Context, bookRepo book.Repository, userRepo user.Repository, orders []*order.Order) ([]*OrderResponse, error) {
	bookMap, err := loadBooks(ctx, bookRepo, orders)
	if err != nil {
		return nil, err
	}

	buyers := make(map[uint]*user.User)
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		buyer, ok := buyers[o.UserID]
		if !ok {
			buyer, err = userRepo.FindByID(ctx, o.UserID)
			if err != nil {
				if !apperrors.IsNotFound(err) {
					return nil, err
				}
				buyer = nil
			}
			buyers[o.UserID] = buyer
		}
		out[i] = toOrderResponse(o, buyer, bookMap)
	}
	return out, nil
}

// loadBooks 收集订单明细引用的图书ID并批量查询
// 已下架图书也会返回(FindByIDs不过滤);已物理清除的ID缺项,投影省略图书摘要
func loadBooks(ctx context.Context, bookRepo book.Repository, orders []*order.Order) (map[uint]*book.Book, error) {
	idSet := make(map[uint]struct{})
	var ids []uint
	for _, o := range orders {
		for _, item := range o.Items {
			if _, ok := idSet[item.BookID]; !ok {
				idSet[item.BookID] = struct{}{}
				ids = append(ids, item.BookID)
			}
		}
	}

	books, err := bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	bookMap := make(map[uint]*book.Book, len(books))
	for _, b := range books {
		bookMap[b.ID] = b
	}
	return bookMap, nil
}
