package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pokereview/pkg/metrics"
)

func MetricsMiddleware(appMetrics *metrics.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		appMetrics.IncrementActiveConnections(c.Request.Context())
		defer appMetrics.DecrementActiveConnections(c.Request.Context())

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		appMetrics.RecordRequest(
			c.Request.Context(),
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
			duration,
		)
	}
}
