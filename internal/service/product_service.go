package service

import (
	"strings"

	"github.com/artisan-market/internal/constants"
	"github.com/artisan-market/internal/models"
	"github.com/artisan-market/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name         string
	Description  string
	Category     string
	Price        decimal.Decimal
	CountInStock int
	Images       []string
}

// UpdateProductInput 部分更新输入，nil 字段保持不变
type UpdateProductInput struct {
	Name         *string
	Description  *string
	Category     *string
	Price        *decimal.Decimal
	CountInStock *int
	Images       []string
}

// List 商品列表，可按分类/手艺人过滤
func (s *ProductService) List(category string, artisanID uint, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:        page,
		PageSize:    pageSize,
		Category:    category,
		ArtisanID:   artisanID,
		Search:      search,
		WithArtisan: true,
	}
	return s.repo.List(filter)
}

// Get 获取商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Search 关键词搜索（名称/描述/分类，大小写不敏感）
func (s *ProductService) Search(keyword string) ([]models.Product, error) {
	return s.repo.Search(keyword)
}

// Create 创建商品，归属当前手艺人
func (s *ProductService) Create(artisanID uint, input CreateProductInput) (*models.Product, error) {
	price := input.Price.Round(2)
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if input.CountInStock < 0 {
		return nil, ErrInvalidStock
	}

	product := models.Product{
		ArtisanID:    artisanID,
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		Category:     strings.TrimSpace(input.Category),
		Price:        models.NewMoneyFromDecimal(price),
		CountInStock: input.CountInStock,
		Images:       models.StringArray(input.Images),
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update 部分更新商品，仅限所有者或管理员
func (s *ProductService) Update(id, actorID uint, actorRole string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !canMutateProduct(product, actorID, actorRole) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if trimmed := strings.TrimSpace(*input.Name); trimmed != "" {
			updates["name"] = trimmed
		}
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		updates["category"] = strings.TrimSpace(*input.Category)
	}
	if input.Price != nil {
		price := input.Price.Round(2)
		if price.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidPrice
		}
		updates["price"] = models.NewMoneyFromDecimal(price)
	}
	if input.CountInStock != nil {
		if *input.CountInStock < 0 {
			return nil, ErrInvalidStock
		}
		updates["count_in_stock"] = *input.CountInStock
	}
	if input.Images != nil {
		updates["images"] = models.StringArray(input.Images)
	}

	if err := s.repo.Updates(id, updates); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Delete 删除商品，仅限所有者或管理员
func (s *ProductService) Delete(id, actorID uint, actorRole string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !canMutateProduct(product, actorID, actorRole) {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}

func canMutateProduct(product *models.Product, actorID uint, actorRole string) bool {
	if actorRole == constants.RoleAdmin {
		return true
	}
	return product.ArtisanID == actorID
}
