package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/favorite"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// favoriteRepository 收藏仓储实现(MySQL)
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository 创建收藏仓储
func NewFavoriteRepository(db *gorm.DB) favorite.Repository {
	return &favoriteRepository{db: db}
}

// Create 创建收藏
// (user_id, book_id)复合唯一索引冲突时返回重复收藏错误
func (r *favoriteRepository) Create(ctx context.Context, f *favorite.Favorite) error {
	model := toFavoriteModel(f)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return favorite.ErrFavoriteDuplicate
		}
		return apperrors.Wrap(err, "创建收藏失败")
	}

	f.ID = model.ID
	f.CreatedAt = model.CreatedAt

	return nil
}

// Delete 删除收藏
func (r *favoriteRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&FavoriteModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除收藏失败")
	}

	if result.RowsAffected == 0 {
		return favorite.ErrFavoriteNotFound
	}

	return nil
}

// ListByUserID 查询用户的收藏列表,按收藏时间倒序
func (r *favoriteRepository) ListByUserID(ctx context.Context, userID uint) ([]*favorite.Favorite, error) {
	var models []FavoriteModel
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询收藏列表失败")
	}

	favorites := make([]*favorite.Favorite, len(models))
	for i := range models {
		favorites[i] = toFavoriteEntity(&models[i])
	}
	return favorites, nil
}

// toFavoriteModel 领域实体 → GORM模型
func toFavoriteModel(f *favorite.Favorite) *FavoriteModel {
	return &FavoriteModel{
		ID:        f.ID,
		UserID:    f.UserID,
		BookID:    f.BookID,
		CreatedAt: f.CreatedAt,
	}
}

// toFavoriteEntity GORM模型 → 领域实体
func toFavoriteEntity(model *FavoriteModel) *favorite.Favorite {
	return &favorite.Favorite{
		ID:        model.ID,
		UserID:    model.UserID,
		BookID:    model.BookID,
		CreatedAt: model.CreatedAt,
	}
}
