package favorite

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 收藏领域错误定义
var (
	// ErrFavoriteNotFound 收藏不存在
	ErrFavoriteNotFound = apperrors.New(apperrors.ErrCodeFavoriteNotFound, "收藏不存在")

	// ErrFavoriteDuplicate 已收藏过该图书
	ErrFavoriteDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "已收藏过该图书")

	// ErrInvalidIDs 用户ID或图书ID不合法
	ErrInvalidIDs = apperrors.New(apperrors.ErrCodeInvalidParams, "用户ID和图书ID必须大于0")
)
