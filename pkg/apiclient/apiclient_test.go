package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_Get 成功响应解析信封data
func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books/1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    0,
			"message": "success",
			"data":    map[string]interface{}{"id": 1, "title": "《Go语言实战》", "price": 4550},
		})
	}))
	defer server.Close()

	client := New(server.URL, WithToken("test-token"))

	var book struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
		Price int64  `json:"price"`
	}
	err := client.Get(context.Background(), "/api/books/1", &book)
	require.NoError(t, err)

	assert.Equal(t, uint(1), book.ID)
	assert.Equal(t, "《Go语言实战》", book.Title)
	assert.Equal(t, int64(4550), book.Price)
}

// TestClient_Post 请求体序列化与会话Header
func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sid-123", r.Header.Get("X-Session-Id"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(2), body["quantity"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "message": "success"})
	}))
	defer server.Close()

	client := New(server.URL, WithSessionID("sid-123"))

	err := client.Post(context.Background(), "/api/cart/items", map[string]interface{}{
		"bookId":   1,
		"quantity": 2,
	}, nil)
	require.NoError(t, err)
}

// TestClient_APIError 非2xx响应转为APIError
func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    40402,
			"message": "图书不存在",
		})
	}))
	defer server.Close()

	client := New(server.URL)

	err := client.Get(context.Background(), "/api/books/999", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Equal(t, 40402, apiErr.Code)
	assert.Equal(t, "图书不存在", apiErr.Message)
}

// TestClient_NoContent 204响应不解析响应体
func TestClient_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)

	err := client.Delete(context.Background(), "/api/books/1")
	require.NoError(t, err)
}
