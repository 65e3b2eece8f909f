package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/repository"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// ShippingAddressRequest 收货地址
type ShippingAddressRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shipping_address" binding:"required"`
	PaymentMethod   string                 `json:"payment_method" binding:"required"`
	CardNumber      string                 `json:"card_number"`
	CardholderName  string                 `json:"cardholder_name"`
}

// CreateOrder 基于购物车下单
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	order, err := h.OrderService.PlaceOrder(uid, service.PlaceOrderInput{
		ShippingFullName:   req.ShippingAddress.FullName,
		ShippingAddress:    req.ShippingAddress.Address,
		ShippingCity:       req.ShippingAddress.City,
		ShippingState:      req.ShippingAddress.State,
		ShippingPostalCode: req.ShippingAddress.PostalCode,
		ShippingCountry:    req.ShippingAddress.Country,
		ShippingPhone:      req.ShippingAddress.Phone,
		PaymentMethod:      req.PaymentMethod,
		CardNumber:         req.CardNumber,
		CardholderName:     req.CardholderName,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}
	response.Success(c, order)
}

// ListMyOrders 我的订单列表
func (h *Handler) ListMyOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to fetch orders", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder 订单详情（本人或管理员）
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.GetOrder(orderID, uid, getUserRole(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "Order not found", nil)
		case errors.Is(err, service.ErrForbidden):
			respondError(c, response.CodeForbidden, "You can only view your own orders", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to fetch order", err)
		}
		return
	}
	response.Success(c, order)
}

// ListAllOrders 管理端订单列表（挂载于 /orders/admin/all）
func (h *Handler) ListAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var userID uint
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			userID = uint(parsed)
		}
	}

	orders, total, err := h.OrderService.ListForAdmin(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to fetch orders", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}
