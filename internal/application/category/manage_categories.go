package category

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/category"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CreateCategoryUseCase 分类创建用例
type CreateCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewCreateCategoryUseCase 创建分类创建用例
func NewCreateCategoryUseCase(categoryRepo category.Repository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// CreateCategoryRequest 分类创建请求DTO
type CreateCategoryRequest struct {
	Name        string // 分类名称
	Description string // 分类描述
	ImageURL    string // 分类图片URL
	IsActive    *bool  // 启用标记(nil表示启用)
}

// Execute 执行分类创建
// 业务规则:
// 1. 名称不能为空
// 2. 名称全局唯一(不区分大小写),与已停用分类也不能重名
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if req.Name == "" {
		return nil, category.ErrInvalidName
	}

	if err := checkNameConflict(ctx, uc.categoryRepo, req.Name, 0); err != nil {
		return nil, err
	}

	c := category.NewCategory(req.Name, req.Description, req.ImageURL)
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return toCategoryResponse(c), nil
}

// checkNameConflict 重名检查(excludeID用于更新时排除自身)
func checkNameConflict(ctx context.Context, repo category.Repository, name string, excludeID uint) error {
	existing, err := repo.FindByName(ctx, name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return category.ErrNameDuplicate
	}
	return nil
}

// UpdateCategoryUseCase 分类更新用例
type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewUpdateCategoryUseCase 创建分类更新用例
func NewUpdateCategoryUseCase(categoryRepo category.Repository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

// UpdateCategoryRequest 分类更新请求DTO
type UpdateCategoryRequest struct {
	ID          uint
	Name        string
	Description string
	ImageURL    string
}

// Execute 执行分类更新
// 重名检查排除自身:改名回自己原来的名字(或只改大小写)是允许的
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, req UpdateCategoryRequest) error {
	if req.Name == "" {
		return category.ErrInvalidName
	}

	c, err := uc.categoryRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if err := checkNameConflict(ctx, uc.categoryRepo, req.Name, req.ID); err != nil {
		return err
	}

	c.Name = req.Name
	c.Description = req.Description
	c.ImageURL = req.ImageURL

	return uc.categoryRepo.Update(ctx, c)
}

// DeleteCategoryUseCase 分类删除用例(软删除)
// 分类下的图书不级联下架,仍按原CategoryID挂在已停用分类下
type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewDeleteCategoryUseCase 创建分类删除用例
func NewDeleteCategoryUseCase(categoryRepo category.Repository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute 执行分类删除
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) error {
	return uc.categoryRepo.Deactivate(ctx, id)
}
