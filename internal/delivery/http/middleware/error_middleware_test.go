package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldservice/internal/delivery/http/response"
	domainerrors "fieldservice/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "app error",
			err:        errors.Wrap(domainerrors.ErrMissingInput.WithDetails("photo_address"), "submit"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_INPUT",
			wantMsg:    "Required fields are missing",
		},
		{
			name:       "upstream detail",
			err:        domainerrors.NewUpstreamError(http.StatusBadRequest, "Orden ya cerrada", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "UPSTREAM_ERROR",
			wantMsg:    "Orden ya cerrada",
		},
		{
			name:       "upstream unreachable",
			err:        domainerrors.NewUpstreamError(0, "", errors.New("dial tcp")),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_ERROR",
			wantMsg:    domainerrors.GenericUpstreamMessage,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
			wantMsg:    "Not Found",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Internal server error",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}
