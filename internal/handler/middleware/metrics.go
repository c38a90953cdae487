package middleware

import (
	"time"

	"booking-registry/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per matched route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.HTTP().Observe(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
