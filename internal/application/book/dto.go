package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
)

// BookResponse 图书响应DTO
// 价格单位为分,由客户端负责展示格式化
// 所属分类内嵌一层摘要(分类下不再展开图书,避免循环)
type BookResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Description string        `json:"description,omitempty"`
	Price       int64         `json:"price"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Stock       int           `json:"stock"`
	IsActive    bool          `json:"isActive"`
	CategoryID  uint          `json:"categoryId"`
	Category    *BookCategory `json:"category,omitempty"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// BookCategory 图书响应中的分类摘要
type BookCategory struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
}

const timeLayout = "2006-01-02 15:04:05"

// toBookResponse 领域实体 → 响应DTO(cat可为nil)
func toBookResponse(b *book.Book, cat *category.Category) *BookResponse {
	resp := &BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		ImageURL:    b.ImageURL,
		Stock:       b.Stock,
		IsActive:    b.IsActive,
		CategoryID:  b.CategoryID,
		CreatedAt:   b.CreatedAt.Format(timeLayout),
		UpdatedAt:   b.UpdatedAt.Format(timeLayout),
	}

	if cat != nil {
		resp.Category = &BookCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			ImageURL:    cat.ImageURL,
			IsActive:    cat.IsActive,
			CreatedAt:   cat.CreatedAt.Format(timeLayout),
		}
	}

	return resp
}

// toBookResponses 批量转换,分类从预加载的map中取
func toBookResponses(books []*book.Book, categories map[uint]*category.Category) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = toBookResponse(b, categories[b.CategoryID])
	}
	return out
}

// loadCategories 批量预加载图书引用的分类(去重后一次IN查询)
func loadCategories(ctx context.Context, repo category.Repository, books []*book.Book) (map[uint]*category.Category, error) {
	idSet := make(map[uint]struct{}, len(books))
	ids := make([]uint, 0, len(books))
	for _, b := range books {
		if _, ok := idSet[b.CategoryID]; !ok {
			idSet[b.CategoryID] = struct{}{}
			ids = append(ids, b.CategoryID)
		}
	}

	categories, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	catMap := make(map[uint]*category.Category, len(categories))
	for _, c := range categories {
		catMap[c.ID] = c
	}
	return catMap, nil
}
