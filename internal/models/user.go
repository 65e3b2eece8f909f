package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（买家/手工艺人/管理员）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                            // 主键
	Name         string         `gorm:"not null" json:"name"`                            // 显示名称
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`               // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                               // 密码哈希（不返回给前端）
	Role         string         `gorm:"type:varchar(20);not null;index" json:"role"`     // 角色（buyer/artisan/admin，创建后不可变更）
	ProfileImage string         `gorm:"type:varchar(500)" json:"profile_image,omitempty"` // 头像
	Bio          string         `gorm:"type:text" json:"bio,omitempty"`                  // 简介
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                      // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
