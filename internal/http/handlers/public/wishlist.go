package public

import (
	"errors"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// AddWishlistItemRequest 加入心愿单请求
type AddWishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist 获取心愿单
func (h *Handler) GetWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.WishlistService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to fetch wishlist", err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// AddWishlistItem 加入心愿单
func (h *Handler) AddWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	item, err := h.WishlistService.Add(uid, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "Product not found", nil)
		case errors.Is(err, service.ErrWishlistExists):
			respondError(c, response.CodeConflict, "Product is already in the wishlist", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to add wishlist item", err)
		}
		return
	}
	response.Success(c, item)
}

// RemoveWishlistItem 移出心愿单
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	if err := h.WishlistService.Remove(uid, productID); err != nil {
		if errors.Is(err, service.ErrWishlistNotFound) {
			respondError(c, response.CodeNotFound, "Product is not in the wishlist", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to remove wishlist item", err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}
