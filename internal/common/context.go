package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyCaptureID contextKey = "capture_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithCaptureID adds the in-flight capture ID to the context
func WithCaptureID(ctx context.Context, captureID string) context.Context {
	return context.WithValue(ctx, ContextKeyCaptureID, captureID)
}

// CaptureIDFromContext extracts the in-flight capture ID from context
func CaptureIDFromContext(ctx context.Context) string {
	if captureID, ok := ctx.Value(ContextKeyCaptureID).(string); ok {
		return captureID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
