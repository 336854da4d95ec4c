package util

import (
	"context"
)

type key string

const (
	clientIPKey = key("x-forwarded-for")
	requestKey  = key("x-request-id")
)

// WithClientIP returns a context with a client ip
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP returns client ip from context, empty when not present.
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
