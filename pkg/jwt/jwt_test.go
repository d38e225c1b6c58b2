package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateAndParse Token生成解析往返
func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 168*time.Hour)

	pair, err := m.GenerateToken(42, "zhangsan@example.com", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "zhangsan@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
}

// TestParseToken_Invalid 非法Token
func TestParseToken_Invalid(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 168*time.Hour)

	t.Run("乱码Token", func(t *testing.T) {
		_, err := m.ParseToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("other-secret", 2*time.Hour, 168*time.Hour)
		pair, err := other.GenerateToken(1, "a@example.com", "User")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("已过期Token", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute, 168*time.Hour)
		pair, err := expired.GenerateToken(1, "a@example.com", "User")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.Error(t, err)
	})
}

// TestRefreshAccessToken 刷新后的Token保留身份信息
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 168*time.Hour)

	pair, err := m.GenerateToken(42, "zhangsan@example.com", "User")
	require.NoError(t, err)

	newToken, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "User", claims.Role)
}
