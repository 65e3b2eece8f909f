package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/artisan-market/internal/config"
	"github.com/artisan-market/internal/constants"
	"github.com/artisan-market/internal/logger"
	"github.com/artisan-market/internal/models"
	"github.com/artisan-market/internal/queue"
	"github.com/artisan-market/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	ShippingFullName   string
	ShippingAddress    string
	ShippingCity       string
	ShippingState      string
	ShippingPostalCode string
	ShippingCountry    string
	ShippingPhone      string
	PaymentMethod      string
	CardNumber         string
	CardholderName     string
}

// OrderService 订单服务
type OrderService struct {
	cfg              *config.Config
	orderRepo        repository.OrderRepository
	cartRepo         repository.CartRepository
	productRepo      repository.ProductRepository
	analyticsService *AnalyticsService
	queueClient      *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(cfg *config.Config, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, analyticsService *AnalyticsService, queueClient *queue.Client) *OrderService {
	return &OrderService{
		cfg:              cfg,
		orderRepo:        orderRepo,
		cartRepo:         cartRepo,
		productRepo:      productRepo,
		analyticsService: analyticsService,
		queueClient:      queueClient,
	}
}

// 订单状态流转白名单
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusShipped:    true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
	},
}

// PlaceOrder 基于购物车下单。库存校验、扣减、订单落库与清空购物车
// 在同一事务内完成，任一商品库存不足时整单失败且不产生任何写入。
func (s *OrderService) PlaceOrder(userID uint, input PlaceOrderInput) (*models.Order, error) {
	paymentMethod := strings.ToLower(strings.TrimSpace(input.PaymentMethod))
	if paymentMethod != constants.PaymentMethodCreditCard && paymentMethod != constants.PaymentMethodCashOnDelivery {
		return nil, ErrInvalidPaymentMethod
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:            generateOrderNo(),
		UserID:             userID,
		Status:             constants.OrderStatusPending,
		ShippingFullName:   strings.TrimSpace(input.ShippingFullName),
		ShippingAddress:    strings.TrimSpace(input.ShippingAddress),
		ShippingCity:       strings.TrimSpace(input.ShippingCity),
		ShippingState:      strings.TrimSpace(input.ShippingState),
		ShippingPostalCode: strings.TrimSpace(input.ShippingPostalCode),
		ShippingCountry:    strings.TrimSpace(input.ShippingCountry),
		ShippingPhone:      strings.TrimSpace(input.ShippingPhone),
		PaymentMethod:      paymentMethod,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if paymentMethod == constants.PaymentMethodCreditCard {
		order.CardLastFour = lastFourDigits(input.CardNumber)
		order.CardholderName = strings.TrimSpace(input.CardholderName)
		order.IsPaid = true
		order.PaidAt = &now
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		cartItems, err := cartRepo.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrCartEmpty
		}

		itemsTotal := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for _, cartItem := range cartItems {
			product, err := productRepo.GetByID(cartItem.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrProductNotFound
			}

			affected, err := productRepo.DecrementStock(product.ID, cartItem.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return &InsufficientStockError{
					ProductName: product.Name,
					Available:   product.CountInStock,
				}
			}

			lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
			itemsTotal = itemsTotal.Add(lineTotal)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    cartItem.Quantity,
				TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}

		shippingCost := decimal.NewFromFloat(s.cfg.Order.ShippingCost).Round(2)
		order.ItemsTotal = models.NewMoneyFromDecimal(itemsTotal)
		order.ShippingCost = models.NewMoneyFromDecimal(shippingCost)
		order.TotalAmount = models.NewMoneyFromDecimal(itemsTotal.Add(shippingCost))

		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		return cartRepo.ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}

	s.recordOrderPlaced(order)
	return order, nil
}

// recordOrderPlaced 下单成功后上报统计。统计失败只记日志，不影响订单结果。
func (s *OrderService) recordOrderPlaced(order *models.Order) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueAnalyticsOrderPlaced(queue.AnalyticsOrderPlacedPayload{
			OrderID:  order.ID,
			Revenue:  order.TotalAmount.Decimal.StringFixed(2),
			PlacedAt: order.CreatedAt,
		})
		if err != nil {
			logger.Errorw("order_enqueue_analytics_failed",
				"order_id", order.ID,
				"order_no", order.OrderNo,
				"error", err,
			)
		}
		return
	}
	if s.analyticsService != nil {
		if err := s.analyticsService.RecordOrderPlaced(order.CreatedAt, order.TotalAmount.Decimal); err != nil {
			logger.Errorw("order_record_analytics_failed",
				"order_id", order.ID,
				"order_no", order.OrderNo,
				"error", err,
			)
		}
	}
}

// GetOrder 订单详情，仅限本人或管理员
func (s *OrderService) GetOrder(orderID, actorID uint, actorRole string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != actorID && actorRole != constants.RoleAdmin {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(filter)
}

// ListForAdmin 管理端订单列表
func (s *OrderService) ListForAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// AdminUpdateStatus 管理端更新订单状态，按流转白名单校验
func (s *OrderService) AdminUpdateStatus(orderID uint, targetStatus string) (*models.Order, error) {
	targetStatus = strings.ToLower(strings.TrimSpace(targetStatus))
	if !constants.IsValidOrderStatus(targetStatus) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isTransitionAllowed(order.Status, targetStatus) {
		return nil, ErrInvalidOrderStatus
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if targetStatus == constants.OrderStatusDelivered && !order.IsDelivered {
		now := time.Now()
		updates["is_delivered"] = true
		updates["delivered_at"] = &now
	}
	if err := s.orderRepo.UpdateStatus(orderID, targetStatus, updates); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(orderID)
}

func isTransitionAllowed(current, target string) bool {
	if current == target {
		return true
	}
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

func lastFourDigits(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("AM%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
