package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// setRole 测试辅助:模拟RequireAuth注入的角色
func setRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("role", role)
		c.Next()
	}
}

// TestRequireAdmin 管理员校验
func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := &AuthMiddleware{}

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.POST("/admin-only", setRole(role), m.RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("管理员放行", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		newRouter("Admin").ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("普通用户拒绝", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		newRouter("User").ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestRequireSession 购物车会话中间件
func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/cart", RequireSession(), func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c))
	})

	t.Run("携带会话头放行", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("X-Session-Id", "sid-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sid-123", w.Body.String())
	})

	t.Run("缺少会话头拒绝", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
