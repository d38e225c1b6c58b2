package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/pkg/response"
)

// sessionHeader 购物车会话标识Header
// 会话ID由客户端生成(如UUID)并在后续请求中携带,未登录用户也能使用购物车
const sessionHeader = "X-Session-Id"

// RequireSession 要求购物车会话标识
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			response.ErrorWithCode(c, 40900, "缺少"+sessionHeader+"请求头")
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// GetSessionID 从Context获取购物车会话ID
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get("session_id"); exists {
		if sid, ok := sessionID.(string); ok {
			return sid
		}
	}
	return ""
}
