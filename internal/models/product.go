package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                     // 主键
	ArtisanID    uint           `gorm:"not null;index" json:"artisan_id"`                         // 所属手工艺人ID
	Name         string         `gorm:"not null;index" json:"name"`                               // 名称
	Description  string         `gorm:"type:text" json:"description"`                             // 描述
	Category     string         `gorm:"type:varchar(100);index" json:"category"`                  // 分类
	Price        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`      // 单价
	CountInStock int            `gorm:"not null;default:0" json:"count_in_stock"`                 // 库存数量（下单时校验并扣减，不允许为负）
	Images       StringArray    `gorm:"type:json" json:"images"`                                  // 图片数组
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                               // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	Artisan *User `gorm:"foreignKey:ArtisanID" json:"artisan,omitempty"` // 关联手工艺人
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
