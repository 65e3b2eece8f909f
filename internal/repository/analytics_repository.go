package repository

import (
	"time"

	"github.com/artisan-market/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnalyticsSummary 时间窗口内的汇总统计
type AnalyticsSummary struct {
	TotalVisits  int64
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}

// AnalyticsRepository 按天统计数据访问接口
// 写入均为 upsert-increment 语义：同一天的并发累加互不覆盖。
type AnalyticsRepository interface {
	IncrementVisits(day time.Time) error
	IncrementOrders(day time.Time, revenue decimal.Decimal) error
	ListRange(from, to time.Time) ([]models.AnalyticsDaily, error)
	Summarize(from, to time.Time) (*AnalyticsSummary, error)
}

// GormAnalyticsRepository GORM 实现
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository 创建统计仓库
func NewAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// IncrementVisits 访问量 +1
func (r *GormAnalyticsRepository) IncrementVisits(day time.Time) error {
	record := models.AnalyticsDaily{
		Date:      models.DayOf(day),
		Visits:    1,
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"visits":     gorm.Expr("visits + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&record).Error
}

// IncrementOrders 订单数 +1，并累加营收
func (r *GormAnalyticsRepository) IncrementOrders(day time.Time, revenue decimal.Decimal) error {
	record := models.AnalyticsDaily{
		Date:      models.DayOf(day),
		Orders:    1,
		Revenue:   models.NewMoneyFromDecimal(revenue),
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"orders":     gorm.Expr("orders + 1"),
			"revenue":    gorm.Expr("revenue + ?", revenue.Round(2)),
			"updated_at": time.Now(),
		}),
	}).Create(&record).Error
}

// ListRange 按天返回窗口内的原始序列
func (r *GormAnalyticsRepository) ListRange(from, to time.Time) ([]models.AnalyticsDaily, error) {
	var records []models.AnalyticsDaily
	err := r.db.Where("date >= ? AND date <= ?", models.DayOf(from), models.DayOf(to)).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Summarize 汇总窗口内的访问量/订单数/营收
func (r *GormAnalyticsRepository) Summarize(from, to time.Time) (*AnalyticsSummary, error) {
	var row struct {
		TotalVisits  int64
		TotalOrders  int64
		TotalRevenue decimal.Decimal
	}
	err := r.db.Model(&models.AnalyticsDaily{}).
		Select("COALESCE(SUM(visits),0) AS total_visits, COALESCE(SUM(orders),0) AS total_orders, COALESCE(SUM(revenue),0) AS total_revenue").
		Where("date >= ? AND date <= ?", models.DayOf(from), models.DayOf(to)).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &AnalyticsSummary{
		TotalVisits:  row.TotalVisits,
		TotalOrders:  row.TotalOrders,
		TotalRevenue: row.TotalRevenue.Round(2),
	}, nil
}
