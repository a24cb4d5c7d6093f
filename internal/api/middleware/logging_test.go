package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	t.Run("Propagates the request id and logs the final status", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer

		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
		t.Cleanup(func() { slog.SetDefault(previous) })

		handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			middleware.LoggerFromContext(r.Context()).Info("inside handler")
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		rr := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, "req-123", rr.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), `"correlation_id":"req-123"`)
		assert.Contains(t, buf.String(), "inside handler")
		assert.Contains(t, buf.String(), `"http_status":418`)
	})

	t.Run("Generates a request id when missing", func(t *testing.T) {
		handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	})
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.LoggerFromContext(context.Background()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := context.WithValue(context.Background(), middleware.LoggerKey, custom)

	require.Same(t, custom, middleware.LoggerFromContext(ctx))
}
