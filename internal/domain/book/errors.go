package book

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrInvalidTitle 书名不能为空
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrInvalidAuthor 作者不能为空
	ErrInvalidAuthor = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")

	// ErrInvalidCategory 无效的分类
	ErrInvalidCategory = apperrors.New(apperrors.ErrCodeInvalidParams, "分类ID不合法")

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
)

// ErrBookNotFoundByID 图书不存在(带ID信息)
func ErrBookNotFoundByID(id uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "图书不存在: id=%d", id)
}

// ErrInsufficientStock 库存不足(带图书ID、需求量、当前库存)
func ErrInsufficientStock(bookID uint, requested, available int) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
		"图书库存不足: id=%d, 需要:%d, 当前库存:%d", bookID, requested, available)
}
