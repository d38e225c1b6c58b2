package category

import (
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
)

// CategoryResponse 分类响应DTO
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CategoryDetailResponse 分类详情响应DTO(附带分类下的上架图书)
type CategoryDetailResponse struct {
	CategoryResponse
	Books []CategoryBook `json:"books"`
}

// CategoryBook 分类详情中的图书摘要
type CategoryBook struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl,omitempty"`
	Stock    int    `json:"stock"`
}

const timeLayout = "2006-01-02 15:04:05"

// toCategoryResponse 领域实体 → 响应DTO
func toCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt.Format(timeLayout),
		UpdatedAt:   c.UpdatedAt.Format(timeLayout),
	}
}

// toCategoryBooks 图书实体 → 分类详情摘要
func toCategoryBooks(books []*book.Book) []CategoryBook {
	out := make([]CategoryBook, len(books))
	for i, b := range books {
		out[i] = CategoryBook{
			ID:       b.ID,
			Title:    b.Title,
			Author:   b.Author,
			Price:    b.Price,
			ImageURL: b.ImageURL,
			Stock:    b.Stock,
		}
	}
	return out
}
