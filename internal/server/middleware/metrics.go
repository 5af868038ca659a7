package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/internal/platform/metrics"
)

// Metrics records status and latency per route template. Unmatched paths are
// folded into one label to bound cardinality.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		collector.ObserveRequest(endpoint, c.Writer.Status(), time.Since(start))
	}
}
