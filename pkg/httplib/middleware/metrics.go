package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/public-api/pkg/metrics"
)

// Metrics records request count and latency by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		done := m.RequestStarted(c.Request.Method, route)
		c.Next()
		done(strconv.Itoa(c.Writer.Status()))
	}
}
