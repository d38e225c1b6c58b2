package category

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
)

// ListCategoriesUseCase 分类列表用例(只返回启用分类)
type ListCategoriesUseCase struct {
	categoryRepo category.Repository
}

// NewListCategoriesUseCase 创建分类列表用例
func NewListCategoriesUseCase(categoryRepo category.Repository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute 执行分类列表查询
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	return out, nil
}

// GetCategoryUseCase 分类详情用例
// 详情附带分类下的上架图书列表;已停用分类也能按ID直查
type GetCategoryUseCase struct {
	categoryRepo category.Repository
	bookRepo     book.Repository
}

// NewGetCategoryUseCase 创建分类详情用例
func NewGetCategoryUseCase(categoryRepo category.Repository, bookRepo book.Repository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		bookRepo:     bookRepo,
	}
}

// Execute 执行分类详情查询
func (uc *GetCategoryUseCase) Execute(ctx context.Context, id uint) (*CategoryDetailResponse, error) {
	c, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := uc.bookRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CategoryDetailResponse{
		CategoryResponse: *toCategoryResponse(c),
		Books:            toCategoryBooks(books),
	}, nil
}
