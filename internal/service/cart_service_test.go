package service

import (
	"errors"
	"testing"

	"github.com/artisan-market/internal/constants"
	"github.com/artisan-market/internal/repository"

	"github.com/shopspring/decimal"
)

func setupCartServiceTest(t *testing.T) (*CartService, func() uint, func(artisanID uint, name string, price float64, stock int) uint) {
	t.Helper()
	db := setupServiceTest(t)
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	userSeq := 0
	newUser := func() uint {
		userSeq++
		return createTestUser(t, db, testEmail(userSeq), constants.RoleBuyer).ID
	}
	newProduct := func(artisanID uint, name string, price float64, stock int) uint {
		return createTestProduct(t, db, artisanID, name, price, stock).ID
	}
	return svc, newUser, newProduct
}

func testEmail(seq int) string {
	return "buyer" + string(rune('a'+seq)) + "@example.com"
}

func TestCartAddMergesQuantity(t *testing.T) {
	svc, newUser, newProduct := setupCartServiceTest(t)
	userID := newUser()
	productID := newProduct(1, "Tea Bowl", 48, 10)

	item, err := svc.AddItem(userID, productID, 2)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if item.Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", item.Quantity)
	}

	merged, err := svc.AddItem(userID, productID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if merged.ID != item.ID {
		t.Fatalf("same product should merge into one cart item")
	}
	if merged.Quantity != 5 {
		t.Fatalf("merged quantity want 5 got %d", merged.Quantity)
	}

	detail, err := svc.ListByUser(userID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("cart want 1 item got %d", len(detail.Items))
	}
	if !detail.ItemsTotal.Decimal.Equal(decimal.NewFromInt(240)) {
		t.Fatalf("items total want 240 got %s", detail.ItemsTotal.Decimal.String())
	}
}

func TestCartAddValidation(t *testing.T) {
	svc, newUser, newProduct := setupCartServiceTest(t)
	userID := newUser()
	productID := newProduct(1, "Tea Bowl", 48, 10)

	if _, err := svc.AddItem(userID, productID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(userID, productID, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity want ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(userID, 9999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product want ErrProductNotFound, got %v", err)
	}
}

func TestCartUpdateOwnership(t *testing.T) {
	svc, newUser, newProduct := setupCartServiceTest(t)
	owner := newUser()
	stranger := newUser()
	productID := newProduct(1, "Tea Bowl", 48, 10)

	item, err := svc.AddItem(owner, productID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := svc.UpdateItem(stranger, item.ID, 4); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign item update want ErrCartItemNotFound, got %v", err)
	}
	if err := svc.RemoveItem(stranger, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign item remove want ErrCartItemNotFound, got %v", err)
	}

	updated, err := svc.UpdateItem(owner, item.ID, 4)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Quantity != 4 {
		t.Fatalf("quantity want 4 got %d", updated.Quantity)
	}

	if err := svc.RemoveItem(owner, item.ID); err != nil {
		t.Fatalf("owner remove failed: %v", err)
	}
	if err := svc.RemoveItem(owner, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("double remove want ErrCartItemNotFound, got %v", err)
	}
}

func TestCartClear(t *testing.T) {
	svc, newUser, newProduct := setupCartServiceTest(t)
	userID := newUser()
	other := newUser()
	first := newProduct(1, "Tea Bowl", 48, 10)
	second := newProduct(1, "Plate", 30, 10)

	if _, err := svc.AddItem(userID, first, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddItem(userID, second, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddItem(other, first, 1); err != nil {
		t.Fatalf("add for other user failed: %v", err)
	}

	if err := svc.Clear(userID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	detail, err := svc.ListByUser(userID)
	if err != nil {
		t.Fatalf("list after clear failed: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("cart should be empty, got %d items", len(detail.Items))
	}

	otherDetail, err := svc.ListByUser(other)
	if err != nil {
		t.Fatalf("list other user failed: %v", err)
	}
	if len(otherDetail.Items) != 1 {
		t.Fatalf("other user's cart must be untouched, got %d items", len(otherDetail.Items))
	}
}

func TestCartReaddAfterRemove(t *testing.T) {
	svc, newUser, newProduct := setupCartServiceTest(t)
	userID := newUser()
	productID := newProduct(1, "Tea Bowl", 48, 10)

	item, err := svc.AddItem(userID, productID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveItem(userID, item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	// 删除过的商品可以重新加入，且数量从头计
	readded, err := svc.AddItem(userID, productID, 3)
	if err != nil {
		t.Fatalf("re-add after remove failed: %v", err)
	}
	if readded.Quantity != 3 {
		t.Fatalf("re-added quantity want 3 got %d", readded.Quantity)
	}

	// 清空后同样可以再次加入
	if err := svc.Clear(userID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := svc.AddItem(userID, productID, 1); err != nil {
		t.Fatalf("re-add after clear failed: %v", err)
	}
}
