package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/util"
)

// Logging writes one access log line per request.
func Logging(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		fields := []logger.Field{
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.Request.URL.Path},
			{Key: "status_code", Value: c.Writer.Status()},
			{Key: "response_size", Value: c.Writer.Size()},
			{Key: "duration", Value: time.Since(start).String()},
			{Key: "client_ip", Value: util.GetClientIP(ctx)},
		}

		if c.Writer.Status() >= 500 {
			log.WarnContext(ctx, "HTTP request failed", fields...)
			return
		}
		log.InfoContext(ctx, "HTTP request completed", fields...)
	}
}
