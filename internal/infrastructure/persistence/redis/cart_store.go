package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CartStore 购物车存储
// 设计说明：
// 1. 购物车挂在会话上而不是用户上,未登录也能加购
// 2. 整车JSON序列化存单个Key：cart:{session_id}
// 3. 每次写入都刷新TTL,长时间不活跃的购物车自动过期
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore 创建购物车存储
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Get 读取会话购物车
// Key不存在时返回空购物车,调用方不需要区分"没有车"和"空车"
func (s *CartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(), nil
		}
		return nil, apperrors.Wrap(err, "读取购物车失败")
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, apperrors.Wrap(err, "解析购物车数据失败")
	}

	return &c, nil
}

// Save 保存会话购物车并刷新过期时间
func (s *CartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return apperrors.Wrap(err, "序列化购物车失败")
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "保存购物车失败")
	}

	return nil
}

// Delete 删除会话购物车(清空购物车或结算完成后调用)
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return apperrors.Wrap(err, "删除购物车失败")
	}
	return nil
}
