package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "fieldservice/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/ping", func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(ctx))
		deliverycontext.GetLoggerOrDefault(ctx, nil).Info("handled")

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(slog.Default()).Process)
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	tests := map[string]string{
		"newline":  "abc\nforged=1",
		"too long": strings.Repeat("a", maxRequestIDLength+1),
		"spaces":   "a b",
	}

	for name, id := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.Default()).Process)
			e.GET("/ping", func(c echo.Context) error {
				assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header[deliverycontext.HeaderXRequestID] = []string{id}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, id, got)
			assert.Len(t, got, 36)
		})
	}
}

func TestWithLogAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := deliverycontext.WithLogAttrs(context.Background(), logger, slog.String("view_id", "v1"))
	deliverycontext.GetLoggerOrDefault(ctx, nil).Info("tagged")

	assert.Contains(t, buf.String(), `"view_id":"v1"`)
}
