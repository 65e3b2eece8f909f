package queue

import (
	"encoding/json"
	"time"

	"github.com/artisan-market/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskAnalyticsOrderPlaced 下单统计任务
	TaskAnalyticsOrderPlaced = constants.TaskAnalyticsOrderPlaced
)

// AnalyticsOrderPlacedPayload 下单统计任务载荷
type AnalyticsOrderPlacedPayload struct {
	OrderID  uint      `json:"order_id"`
	Revenue  string    `json:"revenue"`
	PlacedAt time.Time `json:"placed_at"`
}

// NewAnalyticsOrderPlacedTask 创建下单统计任务
func NewAnalyticsOrderPlacedTask(payload AnalyticsOrderPlacedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAnalyticsOrderPlaced, body), nil
}
