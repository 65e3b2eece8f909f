package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price" binding:"required"`
	CountInStock int      `json:"count_in_stock"`
	Images       []string `json:"images"`
}

// UpdateProductRequest 部分更新商品请求
type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Price        *float64 `json:"price"`
	CountInStock *int     `json:"count_in_stock"`
	Images       []string `json:"images"`
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || raw == 0 {
		respondError(c, response.CodeBadRequest, "Invalid id", nil)
		return 0, false
	}
	return uint(raw), true
}

// GetProducts 商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	category := strings.TrimSpace(c.Query("category"))
	search := strings.TrimSpace(c.Query("search"))
	var artisanID uint
	if raw := strings.TrimSpace(c.Query("artisan_id")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			artisanID = uint(parsed)
		}
	}

	products, total, err := h.ProductService.List(category, artisanID, search, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to fetch products", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "Product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to fetch product", err)
		return
	}
	response.Success(c, product)
}

// SearchProducts 商品搜索
func (h *Handler) SearchProducts(c *gin.Context) {
	keyword := strings.TrimSpace(c.Param("query"))
	if keyword == "" {
		respondError(c, response.CodeBadRequest, "Search query is required", nil)
		return
	}

	products, err := h.ProductService.Search(keyword)
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to search products", err)
		return
	}
	response.Success(c, products)
}

// CreateProduct 创建商品（手艺人/管理员）
func (h *Handler) CreateProduct(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	product, err := h.ProductService.Create(uid, service.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        decimal.NewFromFloat(req.Price),
		CountInStock: req.CountInStock,
		Images:       req.Images,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPrice):
			respondError(c, response.CodeBadRequest, "Price must not be negative", nil)
		case errors.Is(err, service.ErrInvalidStock):
			respondError(c, response.CodeBadRequest, "Stock must not be negative", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to create product", err)
		}
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品（所有者或管理员）
func (h *Handler) UpdateProduct(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request payload", err)
		return
	}

	input := service.UpdateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		CountInStock: req.CountInStock,
		Images:       req.Images,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	product, err := h.ProductService.Update(id, uid, getUserRole(c), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "Product not found", nil)
		case errors.Is(err, service.ErrForbidden):
			respondError(c, response.CodeForbidden, "You can only modify your own products", nil)
		case errors.Is(err, service.ErrInvalidPrice):
			respondError(c, response.CodeBadRequest, "Price must not be negative", nil)
		case errors.Is(err, service.ErrInvalidStock):
			respondError(c, response.CodeBadRequest, "Stock must not be negative", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to update product", err)
		}
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品（所有者或管理员）
func (h *Handler) DeleteProduct(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id, uid, getUserRole(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "Product not found", nil)
		case errors.Is(err, service.ErrForbidden):
			respondError(c, response.CodeForbidden, "You can only delete your own products", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to delete product", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
