package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"fieldservice/config"
	deliverycontext "fieldservice/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs request details in debug mode, on top of the access log.
// Multipart bodies are summarised by field name; uploaded files are never logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var err error
		if m.debug && c.Path() != "/health" {
			start := time.Now()
			defer func() {
				m.logRequest(c, start, err)
			}()
		}

		// Execute next handler
		err = next(c)

		return err
	}
}

// logRequest logs one finished request at a level matching its status
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", redactQuery(req.URL.Query())))
	}
	if form := req.MultipartForm; form != nil {
		fields = append(fields, slog.Any("form_values", mapKeys(form.Value)), slog.Any("form_files", mapKeys(form.File)))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case res.Status >= http.StatusInternalServerError:
		level = slog.LevelError
	case res.Status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(context.Background(), level, "HTTP Request", fields...)
}

// secretParams never reach the logs, even when a client puts them in a URL.
var secretParams = []string{"jwt", "token", "access", "refresh", "password"}

func redactQuery(query url.Values) string {
	for _, key := range secretParams {
		if query.Has(key) {
			query.Set(key, "REDACTED")
		}
	}

	return query.Encode()
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
