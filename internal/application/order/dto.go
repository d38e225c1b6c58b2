package order

import (
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/user"
)

// OrderResponse 订单响应DTO
// 附带买家摘要和各明细的图书摘要,金额单位为分
type OrderResponse struct {
	ID              uint                `json:"id"`
	UserID          uint                `json:"userId"`
	User            *OrderUser          `json:"user,omitempty"`
	Total           int64               `json:"total"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shippingAddress,omitempty"`
	OrderDate       string              `json:"orderDate"`
	Items           []OrderItemResponse `json:"items"`
}

// OrderUser 订单中的买家摘要
type OrderUser struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// OrderItemResponse 订单明细响应DTO
type OrderItemResponse struct {
	ID         uint       `json:"id"`
	BookID     uint       `json:"bookId"`
	Book       *OrderBook `json:"book,omitempty"`
	Quantity   int        `json:"quantity"`
	UnitPrice  int64      `json:"unitPrice"`
	TotalPrice int64      `json:"totalPrice"`
}

// OrderBook 订单明细中的图书摘要
// 来自图书表当前数据,已下架图书也能取到(按ID直查不过滤)
type OrderBook struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	ImageURL   string `json:"imageUrl,omitempty"`
	CategoryID uint   `json:"categoryId"`
}

const timeLayout = "2006-01-02 15:04:05"

// toOrderResponse 组装订单投影
// buyer和bookMap允许为nil/缺项:对应摘要字段省略,订单主体照常返回
func toOrderResponse(o *order.Order, buyer *user.User, bookMap map[uint]*book.Book) *OrderResponse {
	resp := &OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Total:           o.Total,
		Status:          o.Status.String(),
		ShippingAddress: o.ShippingAddress,
		OrderDate:       o.OrderDate.Format(timeLayout),
		Items:           make([]OrderItemResponse, len(o.Items)),
	}

	if buyer != nil {
		resp.User = &OrderUser{
			ID:        buyer.ID,
			FirstName: buyer.FirstName,
			LastName:  buyer.LastName,
			Email:     buyer.Email,
			Phone:     buyer.Phone,
			Address:   buyer.Address,
		}
	}

	for i, item := range o.Items {
		itemResp := OrderItemResponse{
			ID:         item.ID,
			BookID:     item.BookID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
		if b, ok := bookMap[item.BookID]; ok {
			itemResp.Book = &OrderBook{
				ID:         b.ID,
				Title:      b.Title,
				Author:     b.Author,
				ImageURL:   b.ImageURL,
				CategoryID: b.CategoryID,
			}
		}
		resp.Items[i] = itemResp
	}

	return resp
}
