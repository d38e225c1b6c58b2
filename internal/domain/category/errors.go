package category

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrInvalidName 分类名称不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")

	// ErrNameDuplicate 分类名称已存在(不区分大小写)
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeNameDuplicate, "同名分类已存在")
)
