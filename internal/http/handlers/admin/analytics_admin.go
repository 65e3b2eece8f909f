package admin

import (
	"errors"

	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAnalytics 获取周期统计报表
func (h *Handler) GetAnalytics(c *gin.Context) {
	period := c.Param("period")

	report, err := h.AnalyticsService.Report(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			respondError(c, response.CodeBadRequest, "Period must be day, week, month or year", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to build analytics report", err)
		return
	}
	response.Success(c, report)
}
