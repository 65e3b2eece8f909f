package public

import (
	"errors"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest 更新个人资料请求
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}

// ListArtisans 公开手艺人目录
func (h *Handler) ListArtisans(c *gin.Context) {
	artisans, err := h.UserService.ListArtisans()
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to fetch artisans", err)
		return
	}
	response.Success(c, artisans)
}

// GetProfile 当前用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserService.GetByID(uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "User not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to fetch profile", err)
		return
	}
	response.Success(c, user)
}

// UpdateProfile 更新个人资料；profile_image 仅手艺人生效
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	user, err := h.UserService.UpdateProfile(uid, req.Name, req.Bio, req.ProfileImage)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "User not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to update profile", err)
		return
	}
	response.Success(c, user)
}
