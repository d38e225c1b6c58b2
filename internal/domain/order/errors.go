package order

import (
	"fmt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidUserID 用户ID不合法
	ErrInvalidUserID = apperrors.New(apperrors.ErrCodeInvalidParams, "用户ID不合法")

	// ErrEmptyItems 订单明细不能为空
	ErrEmptyItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")
)

// ErrInvalidStatusValue 非法的订单状态(带提示合法取值)
func ErrInvalidStatusValue(raw string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeInvalidStatus,
		"非法的订单状态: %q, 合法状态: %v", raw, fmt.Sprint(ValidStatuses()))
}
