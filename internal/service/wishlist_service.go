package service

import (
	"time"

	"github.com/artisan-market/internal/models"
	"github.com/artisan-market/internal/repository"
)

// WishlistService 心愿单服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// ListByUser 获取用户心愿单
func (s *WishlistService) ListByUser(userID uint) ([]models.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(userID)
}

// Add 加入心愿单；(用户, 商品) 对唯一，重复加入报冲突
func (s *WishlistService) Add(userID, productID uint) (*models.WishlistItem, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	exists, err := s.wishlistRepo.Exists(userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrWishlistExists
	}

	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// Remove 移出心愿单；不存在时报 NotFound
func (s *WishlistService) Remove(userID, productID uint) error {
	rows, err := s.wishlistRepo.DeleteByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWishlistNotFound
	}
	return nil
}
