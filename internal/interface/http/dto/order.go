package dto

// CreateOrderRequest HTTP下单请求
type CreateOrderRequest struct {
	UserID          uint                     `json:"userId" binding:"required" example:"1"`
	ShippingAddress string                   `json:"shippingAddress" binding:"max=500" example:"北京市海淀区"`
	OrderItems      []CreateOrderItemRequest `json:"orderItems" binding:"required,min=1,dive"`
}

// CreateOrderItemRequest 下单明细项
type CreateOrderItemRequest struct {
	BookID   uint `json:"bookId" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=999" example:"2"`
}
