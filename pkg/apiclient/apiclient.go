// Package apiclient 提供书店API的Go客户端
// 供集成测试和内部工具调用,封装统一响应信封的解析
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response 服务端统一响应信封
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError 服务端返回的业务错误
type APIError struct {
	HTTPStatus int    // HTTP状态码
	Code       int    // 业务错误码
	Message    string // 错误提示
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: http=%d code=%d message=%s", e.HTTPStatus, e.Code, e.Message)
}

// Client 书店API客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string // Bearer Token(登录后设置)
	sessionID  string // 购物车会话标识
}

// Option 客户端配置项
type Option func(*Client)

// WithHTTPClient 自定义HTTP客户端(测试中注入httptest的Client)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken 设置Bearer Token
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithSessionID 设置购物车会话标识
func WithSessionID(sessionID string) Option {
	return func(c *Client) { c.sessionID = sessionID }
}

// New 创建API客户端
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken 更新Bearer Token(登录成功后调用)
func (c *Client) SetToken(token string) {
	c.token = token
}

// Get 发送GET请求并把data解码到out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post 发送POST请求并把data解码到out(out可为nil)
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put 发送PUT请求
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete 发送DELETE请求
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do 执行请求,解析统一响应信封
// 204响应没有响应体;非2xx响应解析为APIError
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-Id", c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			HTTPStatus: resp.StatusCode,
			Code:       envelope.Code,
			Message:    envelope.Message,
		}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("解析响应数据失败: %w", err)
		}
	}

	return nil
}
