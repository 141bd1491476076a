package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"pokereview/pkg/tracing"
)

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		if raw != "" {
			path = path + "?" + raw
		}

		slog.Info("HTTP Request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"trace_id", tracing.GetTraceID(c.Request.Context()),
		)
	}
}
