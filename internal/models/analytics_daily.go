package models

import "time"

// AnalyticsDaily 按天统计表（日期截断到当天零点，唯一）
// 访问量由流量中间件累加，订单数与营收由下单流程累加。
type AnalyticsDaily struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                 // 主键
	Date      time.Time `gorm:"uniqueIndex;not null" json:"date"`                     // 统计日期（零点）
	Visits    int64     `gorm:"not null;default:0" json:"visits"`                     // 访问量
	Orders    int64     `gorm:"not null;default:0" json:"orders"`                     // 订单数
	Revenue   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"revenue"` // 营收
	UpdatedAt time.Time `json:"updated_at"`                                           // 更新时间
}

// TableName 指定表名
func (AnalyticsDaily) TableName() string {
	return "analytics_daily"
}

// DayOf 将时间截断到当天零点（UTC）
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
