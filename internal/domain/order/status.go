package order

// Status 订单状态
// 设计说明:
// 1. 使用字符串类型,与对外API的状态字段一致
// 2. 五种状态之间不限制流转方向(任意合法状态都可以跳转到另一个合法状态)
// 3. 通过状态改为Cancelled不回补库存,只有删除订单才回补
type Status string

const (
	StatusPending    Status = "Pending"    // 待处理
	StatusProcessing Status = "Processing" // 处理中
	StatusShipped    Status = "Shipped"    // 已发货
	StatusDelivered  Status = "Delivered"  // 已送达
	StatusCancelled  Status = "Cancelled"  // 已取消
)

// validStatuses 合法状态集合
var validStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// IsValid 判断是否为合法状态
func (s Status) IsValid() bool {
	for _, v := range validStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// String 实现Stringer接口
func (s Status) String() string {
	return string(s)
}

// ParseStatus 解析状态字符串
// 不合法的状态返回ErrInvalidStatus
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatusValue(raw)
	}
	return s, nil
}

// ValidStatuses 返回所有合法状态(用于错误提示)
func ValidStatuses() []Status {
	return validStatuses
}
