package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/artisan-market/internal/logger"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackVisitMiddleware 页面访问计数中间件。
// 统计失败只记日志，不影响请求本身。
func TrackVisitMiddleware(analyticsService *service.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if analyticsService == nil {
			return
		}
		if c.Request.Method != http.MethodGet {
			return
		}
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || path == "/health" {
			return
		}
		if err := analyticsService.TrackVisit(time.Now()); err != nil {
			logger.Warnw("track_visit_failed", "path", path, "error", err)
		}
	}
}
