package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"game-media-service/internal/observability/metrics"
)

// Metrics records request counts and latencies per route. The route template
// (e.g. /sprites/:id) is used rather than the raw path to keep cardinality low.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
