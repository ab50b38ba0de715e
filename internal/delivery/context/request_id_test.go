package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	fallback := slog.Default()
	requestLogger := slog.New(slog.DiscardHandler)

	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))

	ctx := WithScope(context.Background(), Scope{RequestID: "req-1", Logger: requestLogger})
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Same(t, requestLogger, LoggerFrom(ctx, fallback))

	noLogger := WithScope(context.Background(), Scope{RequestID: "req-2"})
	assert.Same(t, fallback, LoggerFrom(noLogger, fallback))
}

func TestRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, RequestID(c))

	SetRequestID(c, "req-3")
	assert.Equal(t, "req-3", RequestID(c))
}
