package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// ListBooksUseCase 图书列表用例
// 只返回上架图书,支持分类、关键词、价格区间过滤
type ListBooksUseCase struct {
	bookRepo     book.Repository
	categoryRepo category.Repository
}

// NewListBooksUseCase 创建图书列表用例
func NewListBooksUseCase(bookRepo book.Repository, categoryRepo category.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
	}
}

// ListBooksRequest 图书列表请求DTO
type ListBooksRequest struct {
	CategoryID uint   // 按分类过滤(0表示不过滤)
	Keyword    string // 书名/作者搜索关键词
	MinPrice   int64  // 最低价格(分,0表示不限)
	MaxPrice   int64  // 最高价格(分,0表示不限)
}

// Execute 执行图书列表查询
// 分类摘要批量预加载:去重分类ID后一次查询,不逐本回表
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) ([]*BookResponse, error) {
	books, err := uc.bookRepo.List(ctx, book.ListParams{
		CategoryID: req.CategoryID,
		Keyword:    req.Keyword,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	categories, err := loadCategories(ctx, uc.categoryRepo, books)
	if err != nil {
		return nil, err
	}

	return toBookResponses(books, categories), nil
}

// GetBookUseCase 图书详情用例
// 按ID直查不过滤上架标记:已下架图书仍可通过详情页访问(如历史订单跳转)
type GetBookUseCase struct {
	bookRepo     book.Repository
	categoryRepo category.Repository
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(bookRepo book.Repository, categoryRepo category.Repository) *GetBookUseCase {
	return &GetBookUseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute 执行图书详情查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookResponse, error) {
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cat, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			return nil, err
		}
		cat = nil
	}

	return toBookResponse(b, cat), nil
}
