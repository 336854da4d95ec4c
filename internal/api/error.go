package api

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/public-api/pkg/errors"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/snapshot"
)

// writeError maps err onto a status code and the error body.
// Client input errors are not logged.
func writeError(c *gin.Context, log logger.Interface, err error) {
	ctx := c.Request.Context()

	var details *errors.ErrorDetails
	if errors.IsValidation(err) && stderrors.As(err, &details) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: details.Code, Msg: details.Message, Field: details.Field})
		return
	}

	log.ErrorContext(ctx, err, logger.Field{Key: "path", Value: c.FullPath()})

	var loadErr *snapshot.LoadError
	switch {
	case stderrors.As(err, &loadErr):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code: string(errors.AssetPairLoadError),
			Msg:  "Asset pair dictionary is unavailable",
		})
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code: string(errors.GeneralInternalServerError),
			Msg:  "Request was cancelled before completion",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code: string(errors.GeneralInternalServerError),
			Msg:  "Internal server error",
		})
	}
}

func invalidInput(message, field string) error {
	return errors.NewErrorDetails(message, string(errors.InvalidInputError), field)
}
