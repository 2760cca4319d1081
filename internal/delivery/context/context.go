// Package context carries request-scoped values (request id, logger) from the
// delivery layer down to the use cases and the order server client.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID stores the request id, both in echo.Context and context.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger stores the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// KeyAccessToken stores the caller's order server bearer token.
	KeyAccessToken ContextKey = "access_token"

	// KeySessionID stores the caller's gateway session id.
	KeySessionID ContextKey = "session_id"

	// HeaderXRequestID is read from gateway requests and forwarded to the order server.
	HeaderXRequestID = echo.HeaderXRequestID
)

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request ID stored in echo.Context, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithLogAttrs adds attrs to the request-scoped logger (or fallback, when ctx
// has none) for everything downstream of ctx.
func WithLogAttrs(ctx context.Context, fallback *slog.Logger, attrs ...slog.Attr) context.Context {
	logger := GetLoggerOrDefault(ctx, fallback)
	if logger == nil || len(attrs) == 0 {
		return ctx
	}

	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	return WithLogger(ctx, logger.With(args...))
}

// WithAccessToken makes the order server client send token as the bearer for
// requests made with the returned context.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, KeyAccessToken, token)
}

// GetAccessToken returns the caller's bearer token, or "".
func GetAccessToken(ctx context.Context) string {
	token, _ := ctx.Value(KeyAccessToken).(string)

	return token
}

// WithSessionID returns a new context carrying the caller's gateway session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, KeySessionID, id)
}

// GetSessionID returns the caller's gateway session id, or "" outside the gateway.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(KeySessionID).(string)

	return id
}
