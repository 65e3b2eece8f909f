package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/artisan-market/internal/config"
	"github.com/artisan-market/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupServiceTest 准备独立的内存数据库，并接管全局 DB 供事务型服务使用。
func setupServiceTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
		&models.AnalyticsDaily{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	prev := models.DB
	models.DB = db
	t.Cleanup(func() {
		models.DB = prev
	})
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "service-test-secret-key-0123456789ab",
			ExpireHours: 1,
		},
		Order: config.OrderConfig{ShippingCost: 5},
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := &models.User{
		Name:         strings.SplitN(email, "@", 2)[0],
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s failed: %v", email, err)
	}
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, artisanID uint, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		ArtisanID:    artisanID,
		Name:         name,
		Description:  "handmade " + name,
		Category:     "ceramics",
		Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		CountInStock: stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product %s failed: %v", name, err)
	}
	return product
}
