package admin

import (
	"errors"
	"strconv"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus 管理端更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	rawID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || rawID == 0 {
		respondError(c, response.CodeBadRequest, "Invalid order id", nil)
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	order, err := h.OrderService.AdminUpdateStatus(uint(rawID), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "Order not found", nil)
		case errors.Is(err, service.ErrInvalidOrderStatus):
			respondError(c, response.CodeBadRequest, "Invalid order status transition", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to update order status", err)
		}
		return
	}
	requestLog(c).Infow("admin_order_status_updated",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"status", order.Status,
		"admin_id", adminID,
	)
	response.Success(c, order)
}
