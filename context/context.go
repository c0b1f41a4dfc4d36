package context

import (
	"context"
	"time"
)

type ContextKey string

const (
	ContextKeyCorrelationID ContextKey = "Correlation-Id"

	DefaultHttpTimeout = 30 * time.Second
)

func NewContext(correlationID string) context.Context {
	return context.WithValue(context.Background(), ContextKeyCorrelationID, correlationID)
}

func NewContextWithTimeOut(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func SetContextWithValue(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func GetContextValue(ctx context.Context, key ContextKey) string {
	v := ctx.Value(key)
	if v != nil {
		if ret, ok := v.(string); ok {
			return ret
		}
	}
	return ""
}
