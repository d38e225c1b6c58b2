package favorite

import (
	"context"
)

// Repository 收藏仓储接口
type Repository interface {
	// Create 创建收藏((userID, bookID)重复返回ErrFavoriteDuplicate)
	Create(ctx context.Context, f *Favorite) error

	// Delete 删除收藏
	Delete(ctx context.Context, id uint) error

	// ListByUserID 查询用户的收藏列表,按收藏时间倒序
	ListByUserID(ctx context.Context, userID uint) ([]*Favorite, error)
}
