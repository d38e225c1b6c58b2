package cart

// CartItem 购物车行项目
// Price是加入购物车时的图书价格快照(分),仅用于页面展示;
// 下单时以数据库中的当前价格为准重新计算
type CartItem struct {
	BookID   uint   `json:"bookId"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl,omitempty"`
	Quantity int    `json:"quantity"`
}

// TotalPrice 行小计(分)
func (i CartItem) TotalPrice() int64 {
	return i.Price * int64(i.Quantity)
}

// Cart 购物车(会话态纯值类型)
// 设计说明:
// 1. 不落库,整体序列化保存到会话存储,每次变更后重新序列化
// 2. 按BookID维持有序行列表,同一图书只占一行
type Cart struct {
	Items []CartItem `json:"items"`
}

// New 创建空购物车
func New() *Cart {
	return &Cart{Items: []CartItem{}}
}

// AddItem 加入图书
// 已存在同BookID的行则数量累加,否则追加新行
func (c *Cart) AddItem(item CartItem, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].BookID == item.BookID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	item.Quantity = quantity
	c.Items = append(c.Items, item)
}

// RemoveItem 移除指定图书的所有行
func (c *Cart) RemoveItem(bookID uint) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.BookID != bookID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// UpdateQuantity 修改指定图书的数量
// quantity <= 0 等价于RemoveItem
func (c *Cart) UpdateQuantity(bookID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(bookID)
		return
	}
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// GetTotalPrice 购物车总金额(分)
func (c *Cart) GetTotalPrice() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.TotalPrice()
	}
	return total
}

// GetTotalQuantity 购物车总件数
func (c *Cart) GetTotalQuantity() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear 清空购物车(下单成功后调用)
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}
