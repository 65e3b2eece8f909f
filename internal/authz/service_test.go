package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func mustEnforceRole(t *testing.T, svc *Service, role, obj, act string) bool {
	t.Helper()
	allow, err := svc.EnforceRole(role, obj, act)
	if err != nil {
		t.Fatalf("enforce failed, role=%s obj=%s act=%s: %v", role, obj, act, err)
	}
	return allow
}

func TestBuyerCapabilities(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	if !mustEnforceRole(t, svc, "buyer", "/api/cart", "POST") {
		t.Fatalf("buyer should manage cart")
	}
	if !mustEnforceRole(t, svc, "buyer", "/api/cart/:itemId", "DELETE") {
		t.Fatalf("buyer should remove cart items")
	}
	if !mustEnforceRole(t, svc, "buyer", "/api/orders", "POST") {
		t.Fatalf("buyer should place orders")
	}
	if !mustEnforceRole(t, svc, "buyer", "/api/wishlist/:productId", "DELETE") {
		t.Fatalf("buyer should manage wishlist")
	}
	if !mustEnforceRole(t, svc, "buyer", "/api/users/profile", "PUT") {
		t.Fatalf("buyer should update own profile")
	}

	if mustEnforceRole(t, svc, "buyer", "/api/products", "POST") {
		t.Fatalf("buyer must not create products")
	}
	if mustEnforceRole(t, svc, "buyer", "/api/orders/admin/all", "GET") {
		t.Fatalf("buyer must not list all orders")
	}
	if mustEnforceRole(t, svc, "buyer", "/api/admin/users", "GET") {
		t.Fatalf("buyer must not access admin endpoints")
	}
}

func TestArtisanInheritsBuyer(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	if !mustEnforceRole(t, svc, "artisan", "/api/products", "POST") {
		t.Fatalf("artisan should create products")
	}
	if !mustEnforceRole(t, svc, "artisan", "/api/products/:id", "DELETE") {
		t.Fatalf("artisan should delete own products")
	}
	if !mustEnforceRole(t, svc, "artisan", "/api/cart", "GET") {
		t.Fatalf("artisan should inherit buyer cart access")
	}
	if !mustEnforceRole(t, svc, "artisan", "/api/orders", "POST") {
		t.Fatalf("artisan should inherit buyer order placement")
	}

	if mustEnforceRole(t, svc, "artisan", "/api/admin/analytics/:period", "GET") {
		t.Fatalf("artisan must not access admin analytics")
	}
	if mustEnforceRole(t, svc, "artisan", "/api/orders/admin/all", "GET") {
		t.Fatalf("artisan must not list all orders")
	}
}

func TestAdminInheritsAll(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	if !mustEnforceRole(t, svc, "admin", "/api/orders/admin/all", "GET") {
		t.Fatalf("admin should list all orders")
	}
	if !mustEnforceRole(t, svc, "admin", "/api/admin/users", "GET") {
		t.Fatalf("admin should list users")
	}
	if !mustEnforceRole(t, svc, "admin", "/api/admin/orders/:id/status", "PATCH") {
		t.Fatalf("admin should update order status")
	}
	if !mustEnforceRole(t, svc, "admin", "/api/admin/analytics/:period", "GET") {
		t.Fatalf("admin should read analytics")
	}
	if !mustEnforceRole(t, svc, "admin", "/api/products", "POST") {
		t.Fatalf("admin should inherit artisan product creation")
	}
	if !mustEnforceRole(t, svc, "admin", "/api/cart", "GET") {
		t.Fatalf("admin should inherit buyer cart access")
	}
}

func TestEnforceRoleUnknownRole(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	allow, err := svc.EnforceRole("ghost", "/api/cart", "GET")
	if err != nil {
		t.Fatalf("enforce unknown role failed: %v", err)
	}
	if allow {
		t.Fatalf("unknown role must be denied")
	}

	if _, err := svc.EnforceRole("", "/api/cart", "GET"); err == nil {
		t.Fatalf("empty role should be rejected")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "admin/orders", want: "/admin/orders"},
		{in: "/api", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}

	policies, err := svc.GetRolePolicies("buyer")
	if err != nil {
		t.Fatalf("get buyer policies failed: %v", err)
	}
	seen := make(map[string]int, len(policies))
	for _, policy := range policies {
		seen[policy.Object+"|"+policy.Action]++
	}
	for key, count := range seen {
		if count > 1 {
			t.Fatalf("duplicate policy after re-bootstrap: %s", key)
		}
	}
}
