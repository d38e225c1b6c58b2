package dto

// AddFavoriteRequest HTTP收藏请求
// 用户ID取自登录态,不在请求体中携带
type AddFavoriteRequest struct {
	BookID uint `json:"bookId" binding:"required" example:"1"`
}
