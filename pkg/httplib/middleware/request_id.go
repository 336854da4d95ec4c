// Package middleware holds the gin middleware shared by the HTTP server.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/public-api/pkg/util"
)

// RequestID reuses the incoming X-Request-ID or generates one, echoes it on the
// response and stores it, with the client ip, in the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := util.WithRequestID(c.Request.Context(), c.GetHeader(util.RequestIDHeader))
		ctx = util.WithClientIP(ctx, c.ClientIP())
		c.Request = c.Request.WithContext(ctx)

		c.Header(util.RequestIDHeader, util.GetRequestID(ctx))
		c.Next()
	}
}
