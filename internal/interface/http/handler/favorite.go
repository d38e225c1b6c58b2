package handler

import (
	"github.com/gin-gonic/gin"

	appfavorite "github.com/xiebiao/bookshop/internal/application/favorite"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// FavoriteHandler 收藏HTTP处理器
type FavoriteHandler struct {
	addFavorite    *appfavorite.AddFavoriteUseCase
	removeFavorite *appfavorite.RemoveFavoriteUseCase
	listFavorites  *appfavorite.ListFavoritesUseCase
}

// NewFavoriteHandler 创建收藏处理器
func NewFavoriteHandler(
	addFavorite *appfavorite.AddFavoriteUseCase,
	removeFavorite *appfavorite.RemoveFavoriteUseCase,
	listFavorites *appfavorite.ListFavoritesUseCase,
) *FavoriteHandler {
	return &FavoriteHandler{
		addFavorite:    addFavorite,
		removeFavorite: removeFavorite,
		listFavorites:  listFavorites,
	}
}

// AddFavorite 收藏图书
// @Summary      收藏图书
// @Description  当前登录用户收藏图书,重复收藏返回错误
// @Tags         收藏
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddFavoriteRequest true "收藏信息"
// @Success      201 {object} response.Response{data=favorite.FavoriteResponse}
// @Failure      400 {object} response.Response "已收藏过该图书"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/favorites [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.addFavorite.Execute(c.Request.Context(), userID, req.BookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// RemoveFavorite 取消收藏
// @Summary      取消收藏
// @Tags         收藏
// @Security     BearerAuth
// @Param        id path int true "收藏ID"
// @Success      204 "取消成功"
// @Failure      404 {object} response.Response "收藏不存在"
// @Router       /api/favorites/{id} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.removeFavorite.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListUserFavorites 用户收藏列表
// @Summary      用户收藏列表
// @Description  查询指定用户的收藏,附带图书摘要,按收藏时间倒序
// @Tags         收藏
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "用户ID"
// @Success      200 {object} response.Response{data=[]favorite.FavoriteResponse}
// @Router       /api/favorites/user/{userId} [get]
func (h *FavoriteHandler) ListUserFavorites(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	result, err := h.listFavorites.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
