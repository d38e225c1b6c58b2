package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 购物车挂在X-Session-Id标识的会话上,加购/查看不要求登录,结算要求登录
type CartHandler struct {
	cart *appcart.CartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(cart *appcart.CartUseCase) *CartHandler {
	return &CartHandler{cart: cart}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Tags         购物车
// @Produce      json
// @Param        X-Session-Id header string true "会话标识"
// @Success      200 {object} response.Response{data=cart.CartResponse}
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	result, err := h.cart.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  只有上架图书能加购,同一图书重复加购数量累加
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        X-Session-Id header string true "会话标识"
// @Param        request body dto.AddCartItemRequest true "加购信息"
// @Success      200 {object} response.Response{data=cart.CartResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.cart.Add(c.Request.Context(), middleware.GetSessionID(c), req.BookID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateItem 修改购物车行数量
// @Summary      修改购物车行数量
// @Description  数量为0等价于移除该行
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        X-Session-Id header string true "会话标识"
// @Param        bookId path int true "图书ID"
// @Param        request body dto.UpdateCartItemRequest true "目标数量"
// @Success      200 {object} response.Response{data=cart.CartResponse}
// @Router       /api/cart/items/{bookId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.cart.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), bookID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RemoveItem 移除购物车行
// @Summary      移除购物车行
// @Tags         购物车
// @Produce      json
// @Param        X-Session-Id header string true "会话标识"
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response{data=cart.CartResponse}
// @Router       /api/cart/items/{bookId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	result, err := h.cart.Remove(c.Request.Context(), middleware.GetSessionID(c), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Checkout 结算购物车
// @Summary      结算购物车
// @Description  把购物车各行转为订单,下单成功后清空购物车;买家为当前登录用户
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Session-Id header string true "会话标识"
// @Param        request body dto.CheckoutRequest true "结算信息"
// @Success      201 {object} response.Response{data=order.OrderResponse}
// @Failure      400 {object} response.Response "购物车为空或库存不足"
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.cart.Checkout(c.Request.Context(), middleware.GetSessionID(c), userID, req.ShippingAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}
