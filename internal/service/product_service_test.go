package service

import (
	"errors"
	"testing"

	"github.com/artisan-market/internal/constants"
	"github.com/artisan-market/internal/repository"

	"github.com/shopspring/decimal"
)

func TestProductCreateValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewProductService(repository.NewProductRepository(db))
	artisan := createTestUser(t, db, "mei@example.com", constants.RoleArtisan)

	if _, err := svc.Create(artisan.ID, CreateProductInput{Name: "Bowl", Price: decimal.NewFromFloat(-1)}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("negative price want ErrInvalidPrice, got %v", err)
	}
	if _, err := svc.Create(artisan.ID, CreateProductInput{Name: "Bowl", Price: decimal.Zero}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("zero price want ErrInvalidPrice, got %v", err)
	}
	if _, err := svc.Create(artisan.ID, CreateProductInput{Name: "Bowl", Price: decimal.NewFromFloat(10), CountInStock: -1}); !errors.Is(err, ErrInvalidStock) {
		t.Fatalf("negative stock want ErrInvalidStock, got %v", err)
	}

	product, err := svc.Create(artisan.ID, CreateProductInput{
		Name:         "  Tea Bowl  ",
		Description:  "wood-fired",
		Category:     "ceramics",
		Price:        decimal.NewFromFloat(48.005),
		CountInStock: 3,
		Images:       []string{"https://example.com/bowl.jpg"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.Name != "Tea Bowl" {
		t.Fatalf("name should be trimmed, got %q", product.Name)
	}
	if product.ArtisanID != artisan.ID {
		t.Fatalf("product should belong to creating artisan")
	}
	if !product.Price.Decimal.Equal(decimal.NewFromFloat(48.01)) {
		t.Fatalf("price should round to 2dp, got %s", product.Price.Decimal.String())
	}
}

func TestProductUpdateOwnership(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewProductService(repository.NewProductRepository(db))
	owner := createTestUser(t, db, "mei@example.com", constants.RoleArtisan)
	other := createTestUser(t, db, "tomas@example.com", constants.RoleArtisan)
	admin := createTestUser(t, db, "root@example.com", constants.RoleAdmin)
	product := createTestProduct(t, db, owner.ID, "Tea Bowl", 48, 3)

	newName := "Updated Bowl"
	if _, err := svc.Update(product.ID, other.ID, constants.RoleArtisan, UpdateProductInput{Name: &newName}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("other artisan update want ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(product.ID, owner.ID, constants.RoleArtisan, UpdateProductInput{Name: &newName})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != newName {
		t.Fatalf("name not updated, got %q", updated.Name)
	}

	zero := decimal.Zero
	if _, err := svc.Update(product.ID, owner.ID, constants.RoleArtisan, UpdateProductInput{Price: &zero}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("zero price update want ErrInvalidPrice, got %v", err)
	}

	price := decimal.NewFromFloat(52.5)
	stock := 9
	updated, err = svc.Update(product.ID, admin.ID, constants.RoleAdmin, UpdateProductInput{Price: &price, CountInStock: &stock})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.CountInStock != 9 {
		t.Fatalf("stock want 9 got %d", updated.CountInStock)
	}
	if !updated.Price.Decimal.Equal(decimal.NewFromFloat(52.5)) {
		t.Fatalf("price want 52.5 got %s", updated.Price.Decimal.String())
	}

	if _, err := svc.Update(9999, owner.ID, constants.RoleArtisan, UpdateProductInput{Name: &newName}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product want ErrProductNotFound, got %v", err)
	}
}

func TestProductDeleteOwnership(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewProductService(repository.NewProductRepository(db))
	owner := createTestUser(t, db, "mei@example.com", constants.RoleArtisan)
	other := createTestUser(t, db, "tomas@example.com", constants.RoleArtisan)
	product := createTestProduct(t, db, owner.ID, "Tea Bowl", 48, 3)

	if err := svc.Delete(product.ID, other.ID, constants.RoleArtisan); !errors.Is(err, ErrForbidden) {
		t.Fatalf("other artisan delete want ErrForbidden, got %v", err)
	}
	if err := svc.Delete(product.ID, owner.ID, constants.RoleArtisan); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("deleted product want ErrProductNotFound, got %v", err)
	}
}

func TestProductListAndSearch(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewProductService(repository.NewProductRepository(db))
	mei := createTestUser(t, db, "mei@example.com", constants.RoleArtisan)
	tomas := createTestUser(t, db, "tomas@example.com", constants.RoleArtisan)
	createTestProduct(t, db, mei.ID, "Wood-Fired Tea Bowl", 48, 3)
	createTestProduct(t, db, mei.ID, "Speckled Plate", 30, 5)
	leather := createTestProduct(t, db, tomas.ID, "Leather Wallet", 75, 10)
	leather.Category = "leather"
	if err := db.Save(leather).Error; err != nil {
		t.Fatalf("save product failed: %v", err)
	}

	items, total, err := svc.List("", 0, "", 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("list want 3 products, got total=%d len=%d", total, len(items))
	}

	items, total, err = svc.List("leather", 0, "", 1, 10)
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 1 || items[0].Name != "Leather Wallet" {
		t.Fatalf("category filter mismatch: total=%d", total)
	}

	items, total, err = svc.List("", mei.ID, "", 1, 10)
	if err != nil {
		t.Fatalf("list by artisan failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("artisan filter want 2, got %d", total)
	}
	for _, item := range items {
		if item.ArtisanID != mei.ID {
			t.Fatalf("artisan filter returned foreign product %d", item.ID)
		}
	}

	results, err := svc.Search("tea")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Wood-Fired Tea Bowl" {
		t.Fatalf("case-insensitive search mismatch: %d results", len(results))
	}
}
