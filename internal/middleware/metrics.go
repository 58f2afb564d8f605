package middleware

import (
	"strconv"
	"time"

	"trivia-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and durations for Prometheus.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	}
}
