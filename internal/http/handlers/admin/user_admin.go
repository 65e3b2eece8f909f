package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/repository"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// GetUsers 获取用户列表
func (h *Handler) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	users, total, err := h.UserService.AdminListUsers(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Role:     strings.TrimSpace(c.Query("role")),
		Keyword:  strings.TrimSpace(c.Query("keyword")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to fetch users", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, users, pagination)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	rawID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || rawID == 0 {
		respondError(c, response.CodeBadRequest, "Invalid user id", nil)
		return
	}
	if uint(rawID) == adminID {
		respondError(c, response.CodeBadRequest, "You cannot delete your own account", nil)
		return
	}

	if err := h.UserService.AdminDeleteUser(uint(rawID)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "User not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to delete user", err)
		return
	}
	requestLog(c).Infow("admin_user_deleted", "user_id", rawID, "admin_id", adminID)
	response.Success(c, gin.H{"deleted": true})
}
