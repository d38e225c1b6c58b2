package dto

// AddCartItemRequest HTTP加购请求
type AddCartItemRequest struct {
	BookID   uint `json:"bookId" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"omitempty,min=1,max=999" example:"2"`
}

// UpdateCartItemRequest HTTP购物车改量请求
// 数量为0表示移除该行
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0,max=999" example:"3"`
}

// CheckoutRequest HTTP购物车结算请求
type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress" binding:"max=500" example:"北京市海淀区"`
}
