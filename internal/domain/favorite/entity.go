package favorite

import (
	"time"
)

// Favorite 收藏实体
// (UserID, BookID)组合全局唯一,数据库层有复合唯一索引兜底
type Favorite struct {
	ID        uint
	UserID    uint
	BookID    uint
	CreatedAt time.Time
}

// NewFavorite 创建收藏(工厂方法)
func NewFavorite(userID, bookID uint) *Favorite {
	return &Favorite{
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: time.Now(),
	}
}
