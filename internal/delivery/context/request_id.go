// Package context carries the request-scoped values that the API attaches on entry
// and the use cases read back: the request id and a logger bound to it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a client may use to supply its own request id.
const HeaderXRequestID = echo.HeaderXRequestID

// echoKeyRequestID is where the id lives inside echo.Context for the response writers.
const echoKeyRequestID = "requestId"

type scopeKey struct{}

// Scope is everything attached to a request's context.Context.
type Scope struct {
	RequestID string
	Logger    *slog.Logger
}

// WithScope returns ctx carrying scope.
func WithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the scope stored in ctx.
func ScopeFrom(ctx context.Context) (Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(Scope)

	return scope, ok
}

// RequestIDFrom returns the request id stored in ctx, or "" outside a request.
func RequestIDFrom(ctx context.Context) string {
	scope, _ := ScopeFrom(ctx)

	return scope.RequestID
}

// LoggerFrom returns the request logger stored in ctx, falling back when there is none.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := ScopeFrom(ctx); ok && scope.Logger != nil {
		return scope.Logger
	}

	return fallback
}

// SetRequestID records the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// RequestID returns the id recorded by SetRequestID. Error bodies omit it when empty.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok {
		return id
	}

	return ""
}
