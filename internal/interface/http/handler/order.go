package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createOrder    *apporder.CreateOrderUseCase
	getOrder       *apporder.GetOrderUseCase
	listOrders     *apporder.ListOrdersUseCase
	listUserOrders *apporder.ListUserOrdersUseCase
	updateStatus   *apporder.UpdateOrderStatusUseCase
	deleteOrder    *apporder.DeleteOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrder *apporder.CreateOrderUseCase,
	getOrder *apporder.GetOrderUseCase,
	listOrders *apporder.ListOrdersUseCase,
	listUserOrders *apporder.ListUserOrdersUseCase,
	updateStatus *apporder.UpdateOrderStatusUseCase,
	deleteOrder *apporder.DeleteOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrder:    createOrder,
		getOrder:       getOrder,
		listOrders:     listOrders,
		listUserOrders: listUserOrders,
		updateStatus:   updateStatus,
		deleteOrder:    deleteOrder,
	}
}

// CreateOrder 下单
// @Summary      创建订单
// @Description  校验库存、按当前价格快照计价、扣减库存,整体原子完成
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "下单信息"
// @Success      201 {object} response.Response{data=order.OrderResponse}
// @Failure      400 {object} response.Response "参数错误或库存不足"
// @Failure      404 {object} response.Response "用户或图书不存在"
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	items := make([]apporder.CreateOrderItem, len(req.OrderItems))
	for i, item := range req.OrderItems {
		items[i] = apporder.CreateOrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
	}

	result, err := h.createOrder.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  按ID查询订单,附带买家摘要和图书摘要
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=order.OrderResponse}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.getOrder.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOrders 全部订单列表(管理端)
// @Summary      订单列表
// @Description  管理员查询全部订单,按下单时间倒序
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]order.OrderResponse}
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	result, err := h.listOrders.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListUserOrders 用户订单列表
// @Summary      用户订单列表
// @Description  查询指定用户的订单,按下单时间倒序
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "用户ID"
// @Success      200 {object} response.Response{data=[]order.OrderResponse}
// @Router       /api/orders/user/{userId} [get]
func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	result, err := h.listUserOrders.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateOrderStatus 更新订单状态
// @Summary      更新订单状态
// @Description  请求体为裸JSON字符串,如 "Shipped";合法取值Pending/Processing/Shipped/Delivered/Cancelled
// @Tags         订单
// @Accept       json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        status body string true "目标状态"
// @Success      204 "更新成功"
// @Failure      400 {object} response.Response "非法状态"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// 请求体是裸JSON字符串而非对象
	var rawStatus string
	if err := c.ShouldBindJSON(&rawStatus); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: 请求体应为状态字符串")
		return
	}

	if err := h.updateStatus.Execute(c.Request.Context(), id, rawStatus); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteOrder 删除订单
// @Summary      删除订单
// @Description  管理员删除订单,按明细回补库存(缺书项跳过)
// @Tags         订单
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteOrder.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
