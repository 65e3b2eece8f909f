package worker

import (
	"context"
	"encoding/json"

	"github.com/artisan-market/internal/logger"
	"github.com/artisan-market/internal/provider"
	"github.com/artisan-market/internal/queue"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskAnalyticsOrderPlaced, c.handleAnalyticsOrderPlaced)
}

func (c *Consumer) handleAnalyticsOrderPlaced(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_analytics_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.AnalyticsOrderPlacedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_analytics_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_analytics_order_placed_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	revenue, err := decimal.NewFromString(payload.Revenue)
	if err != nil {
		logger.Warnw("worker_analytics_order_placed_invalid_revenue", "order_id", payload.OrderID, "revenue", payload.Revenue, "error", err)
		return nil
	}
	if c.AnalyticsService == nil {
		logger.Warnw("worker_analytics_order_placed_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.AnalyticsService.RecordOrderPlaced(payload.PlacedAt, revenue); err != nil {
		logger.Warnw("worker_analytics_order_placed_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}
