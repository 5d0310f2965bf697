// Package context carries per-request values between middleware and the
// layers below.
package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// KeyRequestID is the key for storing the request ID in context.
const KeyRequestID ContextKey = "request_id"

// HeaderXRequestID is the HTTP header name for the request ID.
const HeaderXRequestID = "X-Request-Id"

// GetRequestID extracts the request ID from echo.Context, generating a new
// UUID when the request carries none.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// RequestIDFromContext extracts the request ID from a standard context,
// returning the empty string when absent.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}
