package httpx

import (
	"strconv"

	"github.com/Gunvolt24/grubdash/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics — счётчик http_requests_total по методу, шаблону маршрута и статусу.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, RouteOf(c), strconv.Itoa(c.Writer.Status())).Inc()
	}
}
