package service

import (
	"errors"
	"testing"

	"github.com/artisan-market/internal/constants"
	"github.com/artisan-market/internal/repository"
)

func TestAdminDeleteUserFreesEmail(t *testing.T) {
	db := setupServiceTest(t)
	userRepo := repository.NewUserRepository(db)
	userSvc := NewUserService(userRepo)
	authSvc := NewAuthService(testConfig(), userRepo)

	user, _, _, err := authSvc.Register("Ada Brooks", "ada@example.com", "password123", constants.RoleBuyer)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := userSvc.AdminDeleteUser(user.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}

	// 删除用户后邮箱释放，可重新注册
	again, _, _, err := authSvc.Register("Ada Brooks", "ada@example.com", "password456", constants.RoleBuyer)
	if err != nil {
		t.Fatalf("re-register after delete failed: %v", err)
	}
	if again.ID == user.ID {
		t.Fatalf("re-registered account should be a new row")
	}
}

func TestAdminDeleteUserMissing(t *testing.T) {
	db := setupServiceTest(t)
	userSvc := NewUserService(repository.NewUserRepository(db))

	if err := userSvc.AdminDeleteUser(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user want ErrNotFound, got %v", err)
	}
}
