package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/artisan-market/internal/models"
	"github.com/artisan-market/internal/provider"
	"github.com/artisan-market/internal/queue"
	"github.com/artisan-market/internal/repository"
	"github.com/artisan-market/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.AnalyticsDaily{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	analyticsService := service.NewAnalyticsService(repository.NewAnalyticsRepository(db))
	return NewConsumer(&provider.Container{AnalyticsService: analyticsService}), db
}

func newAnalyticsTask(t *testing.T, payload queue.AnalyticsOrderPlacedPayload) *asynq.Task {
	t.Helper()
	task, err := queue.NewAnalyticsOrderPlacedTask(payload)
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	return task
}

func TestHandleAnalyticsOrderPlaced(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	placedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	task := newAnalyticsTask(t, queue.AnalyticsOrderPlacedPayload{
		OrderID:  7,
		Revenue:  "129.50",
		PlacedAt: placedAt,
	})

	if err := consumer.handleAnalyticsOrderPlaced(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var record models.AnalyticsDaily
	if err := db.Where("date = ?", models.DayOf(placedAt)).First(&record).Error; err != nil {
		t.Fatalf("load analytics record failed: %v", err)
	}
	if record.Orders != 1 {
		t.Fatalf("orders want 1, got %d", record.Orders)
	}
	if !record.Revenue.Decimal.Equal(decimal.NewFromFloat(129.50)) {
		t.Fatalf("revenue want 129.50, got %s", record.Revenue.Decimal.String())
	}
}

func TestHandleAnalyticsOrderPlacedAccumulates(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	placedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	for i, revenue := range []string{"10.00", "25.50"} {
		task := newAnalyticsTask(t, queue.AnalyticsOrderPlacedPayload{
			OrderID:  uint(i + 1),
			Revenue:  revenue,
			PlacedAt: placedAt.Add(time.Duration(i) * time.Hour),
		})
		if err := consumer.handleAnalyticsOrderPlaced(context.Background(), task); err != nil {
			t.Fatalf("handle task %d failed: %v", i, err)
		}
	}

	var record models.AnalyticsDaily
	if err := db.Where("date = ?", models.DayOf(placedAt)).First(&record).Error; err != nil {
		t.Fatalf("load analytics record failed: %v", err)
	}
	if record.Orders != 2 {
		t.Fatalf("orders want 2, got %d", record.Orders)
	}
	if !record.Revenue.Decimal.Equal(decimal.NewFromFloat(35.50)) {
		t.Fatalf("revenue want 35.50, got %s", record.Revenue.Decimal.String())
	}
}

func TestHandleAnalyticsOrderPlacedSkipsInvalidPayload(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	// order_id 为 0 的任务直接跳过
	task := newAnalyticsTask(t, queue.AnalyticsOrderPlacedPayload{
		OrderID:  0,
		Revenue:  "10.00",
		PlacedAt: time.Now(),
	})
	if err := consumer.handleAnalyticsOrderPlaced(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}

	// 非法金额同样跳过而不重试
	badRevenue, _ := json.Marshal(queue.AnalyticsOrderPlacedPayload{
		OrderID:  3,
		Revenue:  "not-a-number",
		PlacedAt: time.Now(),
	})
	if err := consumer.handleAnalyticsOrderPlaced(context.Background(), asynq.NewTask(queue.TaskAnalyticsOrderPlaced, badRevenue)); err != nil {
		t.Fatalf("invalid revenue should be skipped, got %v", err)
	}

	var count int64
	if err := db.Model(&models.AnalyticsDaily{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no analytics rows expected, got %d", count)
	}
}
