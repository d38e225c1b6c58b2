package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/bookshop/internal/application/category"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	createCategory *appcategory.CreateCategoryUseCase
	updateCategory *appcategory.UpdateCategoryUseCase
	deleteCategory *appcategory.DeleteCategoryUseCase
	listCategories *appcategory.ListCategoriesUseCase
	getCategory    *appcategory.GetCategoryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	createCategory *appcategory.CreateCategoryUseCase,
	updateCategory *appcategory.UpdateCategoryUseCase,
	deleteCategory *appcategory.DeleteCategoryUseCase,
	listCategories *appcategory.ListCategoriesUseCase,
	getCategory *appcategory.GetCategoryUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		createCategory: createCategory,
		updateCategory: updateCategory,
		deleteCategory: deleteCategory,
		listCategories: listCategories,
		getCategory:    getCategory,
	}
}

// ListCategories 分类列表
// @Summary      分类列表
// @Description  查询启用的分类
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]category.CategoryResponse}
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategories.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetCategory 分类详情
// @Summary      分类详情
// @Description  按ID查询分类,附带分类下的上架图书
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=category.CategoryDetailResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.getCategory.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Description  管理员创建分类,名称全局唯一(不区分大小写)
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      201 {object} response.Response{data=category.CategoryResponse}
// @Failure      400 {object} response.Response "参数错误或重名"
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.createCategory.Execute(c.Request.Context(), appcategory.CreateCategoryRequest{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateCategory 更新分类
// @Summary      更新分类
// @Description  管理员整体更新分类信息
// @Tags         分类
// @Accept       json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "分类信息"
// @Success      204 "更新成功"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	err := h.updateCategory.Execute(c.Request.Context(), appcategory.UpdateCategoryRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Description  管理员停用分类(软删除),分类下的图书不级联下架
// @Tags         分类
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteCategory.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
