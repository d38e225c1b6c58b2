package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CreateBookUseCase 图书录入用例
// 设计说明:
// 1. 应用层负责用例编排,输入输出使用DTO,与HTTP层解耦
// 2. 字段校验在这里完成,分类存在性通过category.Repository检查
type CreateBookUseCase struct {
	bookRepo     book.Repository
	categoryRepo category.Repository
}

// NewCreateBookUseCase 创建图书录入用例
func NewCreateBookUseCase(bookRepo book.Repository, categoryRepo category.Repository) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateBookRequest 图书录入请求DTO
type CreateBookRequest struct {
	Title       string // 书名
	Author      string // 作者
	Description string // 图书描述
	Price       int64  // 价格(分)
	ImageURL    string // 封面图片URL
	Stock       int    // 初始库存
	CategoryID  uint   // 所属分类ID
}

// Execute 执行图书录入
// 业务规则:
// 1. 书名、作者不能为空,价格必须大于0
// 2. 分类ID必须指向已存在的分类(含已停用分类)
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookResponse, error) {
	if err := validateBookFields(req.Title, req.Author, req.Price, req.CategoryID); err != nil {
		return nil, err
	}

	cat, err := uc.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, book.ErrInvalidCategory
		}
		return nil, err
	}

	b := book.NewBook(req.Title, req.Author, req.Description, req.Price, req.ImageURL, req.Stock, req.CategoryID)

	if err := uc.bookRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	return toBookResponse(b, cat), nil
}

// validateBookFields 图书字段校验(录入和更新共用)
func validateBookFields(title, author string, price int64, categoryID uint) error {
	if title == "" {
		return book.ErrInvalidTitle
	}
	if author == "" {
		return book.ErrInvalidAuthor
	}
	if price <= 0 {
		return book.ErrInvalidPrice
	}
	if categoryID == 0 {
		return book.ErrInvalidCategory
	}
	return nil
}
