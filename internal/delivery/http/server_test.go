package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fieldservice/config"
	"fieldservice/internal/delivery/http/middleware"
	"fieldservice/internal/delivery/http/response"
	"fieldservice/internal/delivery/http/router"
	"fieldservice/internal/delivery/http/router/handler"
	mockusecase "fieldservice/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, bodyLimit string) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	require.NoError(t, cfg.ApplyDefaults())
	if bodyLimit != "" {
		cfg.HTTP.MaxRequestBodySize = bodyLimit
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := mockusecase.NewMockClientSessionUsecase(t)
	workflow := mockusecase.NewMockWorkflowUsecase(t)

	return NewEcho(cfg, logger, router.RouterParams{
		SessionHandler: handler.NewSessionHandler(sessions, logger),
		ScanHandler:    handler.NewScanHandler(mockusecase.NewMockQRCaptureUsecase(t), logger),
		ViewHandler:    handler.NewViewHandler(workflow, logger),
		OrderHandler:   handler.NewOrderHandler(mockusecase.NewMockOrderUsecase(t), mockusecase.NewMockReportUsecase(t), logger),
		UserHandler:    handler.NewUserHandler(mockusecase.NewMockUserUsecase(t), logger),
		AuthMiddleware: middleware.NewAuthMiddleware(sessions),
	})
}

func TestNewEcho_Health(t *testing.T) {
	e := newTestEcho(t, "")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestNewEcho_KeepsClientRequestID(t *testing.T) {
	e := newTestEcho(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestNewEcho_UnknownRouteUsesEnvelope(t *testing.T) {
	e := newTestEcho(t, "")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newTestEcho(t, "1K")

	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(`{"payload":"`+strings.Repeat("x", 4096)+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
