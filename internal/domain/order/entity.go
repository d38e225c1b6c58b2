package order

import (
	"time"
)

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体,必须通过Order访问
// 2. Total冗余存储创建时各明细TotalPrice之和,之后不随图书改价变化
// 3. 只保存UserID外键,不持有User对象引用
type Order struct {
	ID              uint
	UserID          uint   // 买家用户ID
	Total           int64  // 订单总金额(分),创建时计算后不再变化
	Status          Status // 订单状态
	ShippingAddress string // 收货地址(可为空)
	OrderDate       time.Time
	Items           []OrderItem // 订单明细
	UpdatedAt       time.Time
}

// OrderItem 订单明细项
// UnitPrice是下单时的价格快照,TotalPrice = UnitPrice × Quantity,
// 两者都在创建时计算,之后不单独修改
type OrderItem struct {
	ID         uint
	OrderID    uint  // 所属订单ID
	BookID     uint  // 图书ID
	Quantity   int   // 购买数量
	UnitPrice  int64 // 下单时单价(分)
	TotalPrice int64 // 行小计(分)
}

// NewOrderItem 创建订单明细(行小计在此计算,保证不变式成立)
func NewOrderItem(bookID uint, quantity int, unitPrice int64) OrderItem {
	return OrderItem{
		BookID:     bookID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice * int64(quantity),
	}
}

// NewOrder 创建新订单(工厂方法)
// 初始状态为Pending,总金额由明细求和得出
func NewOrder(userID uint, shippingAddress string, items []OrderItem) *Order {
	now := time.Now()
	o := &Order{
		UserID:          userID,
		Status:          StatusPending,
		ShippingAddress: shippingAddress,
		OrderDate:       now,
		Items:           items,
		UpdatedAt:       now,
	}
	o.Total = o.CalculateTotal()
	return o
}

// CalculateTotal 根据明细计算订单总金额
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.TotalPrice
	}
	return total
}

// SetStatus 更新订单状态
// 五种合法状态之间不限制流转方向
func (o *Order) SetStatus(target Status) error {
	if !target.IsValid() {
		return ErrInvalidStatusValue(string(target))
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}
