package httpx

import (
	"time"

	"github.com/Gunvolt24/grubdash/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id/trace_id добавляет сам логгер из контекста запроса.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем /metrics, /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		log.Infof(
			c.Request.Context(),
			"request method=%s path=%s route=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method,
			c.Request.URL.Path,
			RouteOf(c),
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}

// RouteOf — шаблон маршрута (/dishes/:dishId) или "unmatched" для неизвестных путей.
func RouteOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
