package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/artisan-market/internal/cache"
	"github.com/artisan-market/internal/constants"
	"github.com/artisan-market/internal/models"
	"github.com/artisan-market/internal/repository"

	"github.com/shopspring/decimal"
)

const analyticsReportCacheTTL = 60 * time.Second

// AnalyticsSeriesPoint 时间序列中的单天数据
type AnalyticsSeriesPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// AnalyticsReportSummary 周期汇总
type AnalyticsReportSummary struct {
	TotalVisits  int64        `json:"total_visits"`
	TotalOrders  int64        `json:"total_orders"`
	TotalRevenue models.Money `json:"total_revenue"`
}

// AnalyticsReport 管理端统计报表
type AnalyticsReport struct {
	Period  string                 `json:"period"`
	Summary AnalyticsReportSummary `json:"summary"`
	Series  struct {
		Visits []AnalyticsSeriesPoint `json:"visits"`
		Orders []AnalyticsSeriesPoint `json:"orders"`
	} `json:"series"`
}

// AnalyticsService 按天统计服务
type AnalyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService 创建统计服务
func NewAnalyticsService(repo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// TrackVisit 记录一次页面访问
func (s *AnalyticsService) TrackVisit(at time.Time) error {
	return s.repo.IncrementVisits(at)
}

// RecordOrderPlaced 记录一笔下单及其营收
func (s *AnalyticsService) RecordOrderPlaced(placedAt time.Time, revenue decimal.Decimal) error {
	return s.repo.IncrementOrders(placedAt, revenue)
}

// Report 生成周期报表，命中缓存时直接返回
func (s *AnalyticsService) Report(ctx context.Context, period string) (*AnalyticsReport, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	days, ok := periodDays(period)
	if !ok {
		return nil, ErrInvalidPeriod
	}

	cacheKey := fmt.Sprintf("analytics:report:%s", period)
	var cached AnalyticsReport
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	now := time.Now().UTC()
	from := models.DayOf(now).AddDate(0, 0, -(days - 1))
	summary, err := s.repo.Summarize(from, now)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListRange(from, now)
	if err != nil {
		return nil, err
	}

	report := &AnalyticsReport{
		Period: period,
		Summary: AnalyticsReportSummary{
			TotalVisits:  summary.TotalVisits,
			TotalOrders:  summary.TotalOrders,
			TotalRevenue: models.NewMoneyFromDecimal(summary.TotalRevenue),
		},
	}
	report.Series.Visits = make([]AnalyticsSeriesPoint, 0, len(records))
	report.Series.Orders = make([]AnalyticsSeriesPoint, 0, len(records))
	for _, record := range records {
		date := record.Date.UTC().Format("2006-01-02")
		report.Series.Visits = append(report.Series.Visits, AnalyticsSeriesPoint{Date: date, Count: record.Visits})
		report.Series.Orders = append(report.Series.Orders, AnalyticsSeriesPoint{Date: date, Count: record.Orders})
	}

	_ = cache.SetJSON(ctx, cacheKey, report, analyticsReportCacheTTL)
	return report, nil
}

func periodDays(period string) (int, bool) {
	switch period {
	case constants.AnalyticsPeriodDay:
		return 1, true
	case constants.AnalyticsPeriodWeek:
		return 7, true
	case constants.AnalyticsPeriodMonth:
		return 30, true
	case constants.AnalyticsPeriodYear:
		return 365, true
	default:
		return 0, false
	}
}
