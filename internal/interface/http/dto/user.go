package dto

// RegisterRequest HTTP注册请求
// 密码强度(8-20位,含字母和数字)在领域服务中校验
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,max=50" example:"三"`
	LastName  string `json:"lastName" binding:"required,max=50" example:"张"`
	Email     string `json:"email" binding:"required,email,max=100" example:"zhangsan@example.com"`
	Password  string `json:"password" binding:"required,min=8,max=20" example:"password123"`
	Phone     string `json:"phone" binding:"max=20" example:"13800000000"`
	Address   string `json:"address" binding:"max=500" example:"北京市海淀区"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}
