package dto

// CreateBookRequest HTTP图书录入请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author      string `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	Description string `json:"description" binding:"max=5000" example:"一本关于Go语言的实战书籍"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"4550"` // 价格(分),45.50元
	ImageURL    string `json:"imageUrl" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	Stock       int    `json:"stock" binding:"min=0" example:"100"`
	CategoryID  uint   `json:"categoryId" binding:"required" example:"1"`
}

// UpdateBookRequest HTTP图书更新请求(整体替换语义,字段要求与录入一致)
type UpdateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Author      string `json:"author" binding:"required,max=100"`
	Description string `json:"description" binding:"max=5000"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url,max=500"`
	Stock       int    `json:"stock" binding:"min=0"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

// ListBooksQuery HTTP图书列表查询参数
type ListBooksQuery struct {
	CategoryID uint   `form:"categoryId" binding:"omitempty" example:"1"`
	Keyword    string `form:"keyword" binding:"omitempty,max=100" example:"Go"`
	MinPrice   int64  `form:"minPrice" binding:"omitempty,min=0" example:"1000"`
	MaxPrice   int64  `form:"maxPrice" binding:"omitempty,min=0" example:"10000"`
}
