package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（收货地址与支付方式均为下单时快照）
type Order struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNo            string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // 订单编号
	UserID             uint           `gorm:"index;not null" json:"user_id"`                              // 下单用户ID
	Status             string         `gorm:"index;not null" json:"status"`                               // 订单状态（pending/processing/shipped/delivered/cancelled）
	ItemsTotal         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"items_total"`   // 商品小计（快照单价×数量求和）
	ShippingCost       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_cost"` // 运费
	TotalAmount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // 实付金额
	ShippingFullName   string         `gorm:"type:varchar(200)" json:"shipping_full_name"`                // 收件人
	ShippingAddress    string         `gorm:"type:varchar(500)" json:"shipping_address"`                  // 地址
	ShippingCity       string         `gorm:"type:varchar(100)" json:"shipping_city"`                     // 城市
	ShippingState      string         `gorm:"type:varchar(100)" json:"shipping_state"`                    // 省/州
	ShippingPostalCode string         `gorm:"type:varchar(40)" json:"shipping_postal_code"`               // 邮编
	ShippingCountry    string         `gorm:"type:varchar(100)" json:"shipping_country"`                  // 国家
	ShippingPhone      string         `gorm:"type:varchar(40)" json:"shipping_phone"`                     // 电话
	PaymentMethod      string         `gorm:"type:varchar(40);not null" json:"payment_method"`            // 支付方式（credit_card/cash_on_delivery）
	CardLastFour       string         `gorm:"type:varchar(4)" json:"card_last_four,omitempty"`            // 卡号后四位（仅保留后四位）
	CardholderName     string         `gorm:"type:varchar(200)" json:"cardholder_name,omitempty"`         // 持卡人
	IsPaid             bool           `gorm:"not null;default:false" json:"is_paid"`                      // 是否已支付
	PaidAt             *time.Time     `gorm:"index" json:"paid_at,omitempty"`                             // 支付时间
	IsDelivered        bool           `gorm:"not null;default:false" json:"is_delivered"`                 // 是否已送达
	DeliveredAt        *time.Time     `gorm:"index" json:"delivered_at,omitempty"`                        // 送达时间
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`   // 下单用户
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
