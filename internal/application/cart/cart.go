package cart

import (
	"context"

	orderapp "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Store 购物车存储接口
// redis.CartStore是生产实现,测试中用内存map实现替换
type Store interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// OrderPlacer 下单入口接口(结算时调用)
type OrderPlacer interface {
	Execute(ctx context.Context, req orderapp.CreateOrderRequest) (*orderapp.OrderResponse, error)
}

// 购物车业务错误
var (
	// ErrEmptyCart 空购物车不能结算
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeBusinessError, "购物车为空,无法结算")

	// ErrBookUnavailable 已下架图书不能加入购物车
	ErrBookUnavailable = apperrors.New(apperrors.ErrCodeBusinessError, "图书已下架,无法加入购物车")
)

// CartUseCase 购物车用例
// 设计说明:
// 1. 购物车挂在会话上,每次操作都是"读出→修改→整体写回"
// 2. 行内价格是加购时的展示快照,结算金额以下单时数据库价格为准
// 3. 结算成功才清空购物车,下单失败时购物车原样保留
type CartUseCase struct {
	store    Store
	bookRepo book.Repository
	placer   OrderPlacer
}

// NewCartUseCase 创建购物车用例
func NewCartUseCase(store Store, bookRepo book.Repository, placer OrderPlacer) *CartUseCase {
	return &CartUseCase{
		store:    store,
		bookRepo: bookRepo,
		placer:   placer,
	}
}

// CartResponse 购物车响应DTO
type CartResponse struct {
	Items         []cart.CartItem `json:"items"`
	TotalPrice    int64           `json:"totalPrice"`
	TotalQuantity int             `json:"totalQuantity"`
}

// toCartResponse 购物车 → 响应DTO
func toCartResponse(c *cart.Cart) *CartResponse {
	return &CartResponse{
		Items:         c.Items,
		TotalPrice:    c.GetTotalPrice(),
		TotalQuantity: c.GetTotalQuantity(),
	}
}

// Get 查询会话购物车
func (uc *CartUseCase) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

// Add 加入图书
// 只有上架图书能加购;行内记录加购时的书名/作者/价格快照
func (uc *CartUseCase) Add(ctx context.Context, sessionID string, bookID uint, quantity int) (*CartResponse, error) {
	b, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !b.IsActive {
		return nil, ErrBookUnavailable
	}

	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.AddItem(cart.CartItem{
		BookID:   b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Price:    b.Price,
		ImageURL: b.ImageURL,
	}, quantity)

	if err := uc.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

// UpdateQuantity 修改指定图书的数量(0等价于移除)
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, sessionID string, bookID uint, quantity int) (*CartResponse, error) {
	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(bookID, quantity)

	if err := uc.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

// Remove 移除指定图书
func (uc *CartUseCase) Remove(ctx context.Context, sessionID string, bookID uint) (*CartResponse, error) {
	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(bookID)

	if err := uc.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

// Clear 清空会话购物车
func (uc *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.store.Delete(ctx, sessionID)
}

// Checkout 结算购物车
// 把购物车各行转成订单明细交给下单用例;下单成功后清空购物车,
// 失败时购物车原样保留供用户调整后重试
func (uc *CartUseCase) Checkout(ctx context.Context, sessionID string, userID uint, shippingAddress string) (*orderapp.OrderResponse, error) {
	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := make([]orderapp.CreateOrderItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = orderapp.CreateOrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
	}

	resp, err := uc.placer.Execute(ctx, orderapp.CreateOrderRequest{
		UserID:          userID,
		ShippingAddress: shippingAddress,
		Items:           items,
	})
	if err != nil {
		return nil, err
	}

	// 清空失败不回滚订单,留给TTL兜底
	if err := uc.store.Delete(ctx, sessionID); err != nil {
		return resp, nil
	}

	return resp, nil
}
