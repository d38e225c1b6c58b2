package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// NoContent 无内容响应（204，用于更新和软删除）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// HTTP状态码由业务错误码推导：
// - 404xx → 404
// - 500xx → 500（隐藏内部错误详情，仅记录日志）
// - 其他   → 400
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误记录到日志，不返回给客户端
	if appErr.Err != nil {
		log.Printf("request failed: %v", appErr)
	}

	status := http.StatusBadRequest
	message := appErr.Message
	switch {
	case appErr.Code >= 40400 && appErr.Code < 40500:
		status = http.StatusNotFound
	case appErr.Code >= 40100 && appErr.Code < 40200:
		status = http.StatusUnauthorized
		if appErr.Code == apperrors.ErrCodeForbidden {
			status = http.StatusForbidden
		}
	case appErr.Code >= 50000:
		status = http.StatusInternalServerError
		message = "系统内部错误"
	}

	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: message,
		Data:    nil,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}
