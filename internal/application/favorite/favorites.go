package favorite

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/favorite"
)

// AddFavoriteUseCase 收藏图书用例
type AddFavoriteUseCase struct {
	favoriteRepo favorite.Repository
	bookRepo     book.Repository
}

// NewAddFavoriteUseCase 创建收藏用例
func NewAddFavoriteUseCase(favoriteRepo favorite.Repository, bookRepo book.Repository) *AddFavoriteUseCase {
	return &AddFavoriteUseCase{
		favoriteRepo: favoriteRepo,
		bookRepo:     bookRepo,
	}
}

// FavoriteResponse 收藏响应DTO
type FavoriteResponse struct {
	ID        uint          `json:"id"`
	UserID    uint          `json:"userId"`
	BookID    uint          `json:"bookId"`
	Book      *FavoriteBook `json:"book,omitempty"`
	CreatedAt string        `json:"createdAt"`
}

// FavoriteBook 收藏列表中的图书摘要
type FavoriteBook struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl,omitempty"`
	IsActive bool   `json:"isActive"`
}

const timeLayout = "2006-01-02 15:04:05"

// Execute 执行收藏
// 业务规则:
// 1. 用户ID和图书ID必须大于0,图书必须存在(含已下架)
// 2. 同一用户对同一图书只能收藏一次,重复收藏返回重复错误
func (uc *AddFavoriteUseCase) Execute(ctx context.Context, userID, bookID uint) (*FavoriteResponse, error) {
	if userID == 0 || bookID == 0 {
		return nil, favorite.ErrInvalidIDs
	}

	b, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	f := favorite.NewFavorite(userID, bookID)
	if err := uc.favoriteRepo.Create(ctx, f); err != nil {
		return nil, err
	}

	return &FavoriteResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		BookID:    f.BookID,
		Book:      toFavoriteBook(b),
		CreatedAt: f.CreatedAt.Format(timeLayout),
	}, nil
}

// RemoveFavoriteUseCase 取消收藏用例
type RemoveFavoriteUseCase struct {
	favoriteRepo favorite.Repository
}

// NewRemoveFavoriteUseCase 创建取消收藏用例
func NewRemoveFavoriteUseCase(favoriteRepo favorite.Repository) *RemoveFavoriteUseCase {
	return &RemoveFavoriteUseCase{favoriteRepo: favoriteRepo}
}

// Execute 执行取消收藏
func (uc *RemoveFavoriteUseCase) Execute(ctx context.Context, id uint) error {
	return uc.favoriteRepo.Delete(ctx, id)
}

// ListFavoritesUseCase 收藏列表用例
type ListFavoritesUseCase struct {
	favoriteRepo favorite.Repository
	bookRepo     book.Repository
}

// NewListFavoritesUseCase 创建收藏列表用例
func NewListFavoritesUseCase(favoriteRepo favorite.Repository, bookRepo book.Repository) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		favoriteRepo: favoriteRepo,
		bookRepo:     bookRepo,
	}
}

// Execute 执行收藏列表查询
// 图书摘要批量查询;已下架图书照常返回并带IsActive标记,供前端置灰展示
func (uc *ListFavoritesUseCase) Execute(ctx context.Context, userID uint) ([]*FavoriteResponse, error) {
	favorites, err := uc.favoriteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(favorites))
	for i, f := range favorites {
		ids[i] = f.BookID
	}

	books, err := uc.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	bookMap := make(map[uint]*book.Book, len(books))
	for _, b := range books {
		bookMap[b.ID] = b
	}

	out := make([]*FavoriteResponse, len(favorites))
	for i, f := range favorites {
		resp := &FavoriteResponse{
			ID:        f.ID,
			UserID:    f.UserID,
			BookID:    f.BookID,
			CreatedAt: f.CreatedAt.Format(timeLayout),
		}
		if b, ok := bookMap[f.BookID]; ok {
			resp.Book = toFavoriteBook(b)
		}
		out[i] = resp
	}
	return out, nil
}

// toFavoriteBook 图书实体 → 收藏摘要
func toFavoriteBook(b *book.Book) *FavoriteBook {
	return &FavoriteBook{
		ID:       b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Price:    b.Price,
		ImageURL: b.ImageURL,
		IsActive: b.IsActive,
	}
}
