package repository

import (
	"errors"
	"strings"

	"github.com/artisan-market/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Updates(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	Search(keyword string) ([]models.Product, error)
	DecrementStock(id uint, quantity int) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if filter.WithArtisan {
		query = query.Preload("Artisan")
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if filter.ArtisanID != 0 {
		query = query.Where("artisan_id = ?", filter.ArtisanID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var products []models.Product
	if err := query.Order("id DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Artisan").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Updates 部分更新商品（仅更新给定字段）
func (r *GormProductRepository) Updates(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error
}

// Delete 删除商品
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// Search 大小写不敏感的子串搜索（名称/描述/分类）
func (r *GormProductRepository) Search(keyword string) ([]models.Product, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
	var products []models.Product
	err := r.db.Preload("Artisan").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", like, like, like).
		Order("id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// DecrementStock 条件扣减库存，库存不足时不产生任何写入，返回受影响行数
func (r *GormProductRepository) DecrementStock(id uint, quantity int) (int64, error) {
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND count_in_stock >= ?", id, quantity).
		UpdateColumn("count_in_stock", gorm.Expr("count_in_stock - ?", quantity))
	return result.RowsAffected, result.Error
}
