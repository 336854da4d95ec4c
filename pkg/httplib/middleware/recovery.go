package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/public-api/pkg/errors"
	"github.com/muhammadchandra19/public-api/pkg/logger"
)

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := errors.TracerFromError(fmt.Errorf("panic: %v", r))
				log.ErrorContext(c.Request.Context(), err,
					logger.Field{Key: "path", Value: c.Request.URL.Path})

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code": errors.GeneralInternalServerError,
					"msg":  "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
