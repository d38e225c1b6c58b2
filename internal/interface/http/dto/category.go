package dto

// CreateCategoryRequest HTTP分类创建请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"计算机"`
	Description string `json:"description" binding:"max=5000" example:"计算机与编程类图书"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url,max=500" example:"https://example.com/category.jpg"`
	IsActive    *bool  `json:"isActive"` // 缺省为true(创建即启用)
}

// UpdateCategoryRequest HTTP分类更新请求
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=5000"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url,max=500"`
}
