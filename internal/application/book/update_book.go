package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
)

// UpdateBookUseCase 图书更新用例
type UpdateBookUseCase struct {
	bookRepo     book.Repository
	categoryRepo category.Repository
}

// NewUpdateBookUseCase 创建图书更新用例
func NewUpdateBookUseCase(bookRepo book.Repository, categoryRepo category.Repository) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
	}
}

// UpdateBookRequest 图书更新请求DTO(整体替换语义)
type UpdateBookRequest struct {
	ID          uint
	Title       string
	Author      string
	Description string
	Price       int64
	ImageURL    string
	Stock       int
	CategoryID  uint
}

// Execute 执行图书更新
// 校验规则与录入一致;目标图书不存在时返回不存在错误
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) error {
	if err := validateBookFields(req.Title, req.Author, req.Price, req.CategoryID); err != nil {
		return err
	}

	exists, err := uc.categoryRepo.ExistsByID(ctx, req.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrInvalidCategory
	}

	b, err := uc.bookRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}

	b.Title = req.Title
	b.Author = req.Author
	b.Description = req.Description
	b.Price = req.Price
	b.ImageURL = req.ImageURL
	b.Stock = req.Stock
	b.CategoryID = req.CategoryID

	return uc.bookRepo.Update(ctx, b)
}

// DeleteBookUseCase 图书下架用例(软删除)
// 行不物理删除:历史订单明细仍引用图书ID,删除后订单投影还要能取到书名
type DeleteBookUseCase struct {
	bookRepo book.Repository
}

// NewDeleteBookUseCase 创建图书下架用例
func NewDeleteBookUseCase(bookRepo book.Repository) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookRepo: bookRepo}
}

// Execute 执行图书下架
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.bookRepo.Deactivate(ctx, id)
}
