package service

import (
	"strings"
	"time"

	"github.com/artisan-market/internal/constants"
	"github.com/artisan-market/internal/models"
	"github.com/artisan-market/internal/repository"
)

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务实例
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID 获取用户信息
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ListArtisans 公开的手艺人目录
func (s *UserService) ListArtisans() ([]models.User, error) {
	return s.userRepo.ListArtisans()
}

// UpdateProfile 更新个人资料；profile_image 仅手艺人生效
func (s *UserService) UpdateProfile(userID uint, name, bio, profileImage *string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if name != nil {
		if trimmed := strings.TrimSpace(*name); trimmed != "" {
			user.Name = trimmed
		}
	}
	if bio != nil {
		user.Bio = strings.TrimSpace(*bio)
	}
	if profileImage != nil && user.Role == constants.RoleArtisan {
		user.ProfileImage = strings.TrimSpace(*profileImage)
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminListUsers 管理端用户列表
func (s *UserService) AdminListUsers(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// AdminDeleteUser 管理端删除用户
func (s *UserService) AdminDeleteUser(id uint) error {
	rows, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
