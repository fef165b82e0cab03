package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"busticket/internal/monitoring"
)

// Metrics records request latency per route into the Prometheus
// histogram. The route template (not the raw path) is used as the
// label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		monitoring.RequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
