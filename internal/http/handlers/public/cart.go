package public

import (
	"errors"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest 更新购物车项请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	detail, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to fetch cart", err)
		return
	}
	response.Success(c, detail)
}

// AddCartItem 加入购物车，同一商品数量累加
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	item, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			respondError(c, response.CodeBadRequest, "Quantity must be greater than zero", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "Product not found", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to add cart item", err)
		}
		return
	}
	response.Success(c, item)
}

// UpdateCartItem 覆写购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	item, err := h.CartService.UpdateItem(uid, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			respondError(c, response.CodeBadRequest, "Quantity must be greater than zero", nil)
		case errors.Is(err, service.ErrCartItemNotFound):
			respondError(c, response.CodeNotFound, "Cart item not found", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to update cart item", err)
		}
		return
	}
	response.Success(c, item)
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	if err := h.CartService.RemoveItem(uid, itemID); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			respondError(c, response.CodeNotFound, "Cart item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to delete cart item", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(uid); err != nil {
		respondError(c, response.CodeInternal, "Failed to clear cart", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
