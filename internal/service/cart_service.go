package service

import (
	"time"

	"github.com/artisan-market/internal/models"
	"github.com/artisan-market/internal/repository"

	"github.com/shopspring/decimal"
)

// CartDetail 购物车响应
type CartDetail struct {
	Items      []models.CartItem `json:"items"`
	ItemsTotal models.Money      `json:"items_total"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车及小计
func (s *CartService) ListByUser(userID uint) (*CartDetail, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Product != nil {
			total = total.Add(item.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return &CartDetail{
		Items:      items,
		ItemsTotal: models.NewMoneyFromDecimal(total),
	}, nil
}

// AddItem 加入购物车；同一商品已存在时数量累加
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	exist, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		exist.Quantity += quantity
		if err := s.cartRepo.UpdateQuantity(exist.ID, exist.Quantity); err != nil {
			return nil, err
		}
		return exist, nil
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem 覆写购物车项数量，仅限本人
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, ErrCartItemNotFound
	}

	if err := s.cartRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

// RemoveItem 删除购物车项，仅限本人
func (s *CartService) RemoveItem(userID, itemID uint) error {
	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil || item.UserID != userID {
		return ErrCartItemNotFound
	}
	return s.cartRepo.DeleteByID(item.ID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}
