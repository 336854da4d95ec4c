package util

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request id in and out of the API.
const RequestIDHeader = "X-Request-ID"

// WithRequestID returns a context with a request id.
// A new uuid-v4 is generated when id is empty.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = NewRequestID()
	}

	return context.WithValue(ctx, requestKey, id)
}

// GetRequestID returns the request id from ctx, empty when not present.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestKey).(string)
	return id
}

// NewRequestID returns a uuid-v4 string to use as request id
func NewRequestID() string {
	return uuid.NewString()
}
