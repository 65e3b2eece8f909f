package public

import (
	"errors"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/models"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func authPayload(user *models.User, token string) gin.H {
	return gin.H{
		"token": token,
		"user":  user,
	}
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	user, token, _, err := h.AuthService.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeConflict, "Email is already registered", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "Invalid email address", nil)
		case errors.Is(err, service.ErrInvalidRole):
			respondError(c, response.CodeBadRequest, "Role must be buyer or artisan", nil)
		default:
			respondError(c, response.CodeInternal, "Registration failed", err)
		}
		return
	}
	response.Success(c, authPayload(user, token))
}

// Login 买家/手艺人登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	user, token, _, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "Invalid email or password", nil)
		case errors.Is(err, service.ErrAdminLoginDenied):
			respondError(c, response.CodeForbidden, "Admins must use the admin login", nil)
		default:
			respondError(c, response.CodeInternal, "Login failed", err)
		}
		return
	}
	response.Success(c, authPayload(user, token))
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	user, token, _, err := h.AuthService.AdminLogin(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "Invalid email or password", nil)
		case errors.Is(err, service.ErrNotAdmin):
			respondError(c, response.CodeForbidden, "Not an admin account", nil)
		default:
			respondError(c, response.CodeInternal, "Login failed", err)
		}
		return
	}
	response.Success(c, authPayload(user, token))
}
