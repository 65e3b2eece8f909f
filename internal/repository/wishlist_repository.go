package repository

import (
	"github.com/artisan-market/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository 心愿单数据访问接口
type WishlistRepository interface {
	ListByUser(userID uint) ([]models.WishlistItem, error)
	Exists(userID, productID uint) (bool, error)
	Create(item *models.WishlistItem) error
	DeleteByUserAndProduct(userID, productID uint) (int64, error)
}

// GormWishlistRepository GORM 实现
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓库
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// ListByUser 获取用户心愿单（带商品）
func (r *GormWishlistRepository) ListByUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Exists 判断 (用户, 商品) 对是否已存在
func (r *GormWishlistRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建心愿单项
func (r *GormWishlistRepository) Create(item *models.WishlistItem) error {
	return r.db.Create(item).Error
}

// DeleteByUserAndProduct 删除心愿单项，返回受影响行数
func (r *GormWishlistRepository) DeleteByUserAndProduct(userID, productID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{})
	return result.RowsAffected, result.Error
}
