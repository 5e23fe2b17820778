// Package context carries request-scoped values between middleware, handlers and services.
package context

import (
	"context"
	"log/slog"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyEstablishment holds the authenticated establishment on echo.Context.
	KeyEstablishment ContextKey = "establishment"

	// KeyVisitor holds the authenticated visitor on echo.Context.
	KeyVisitor ContextKey = "visitor"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
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

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none is set.
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

// SetEstablishment attaches the authenticated establishment.
func SetEstablishment(c echo.Context, establishment *entity.Establishment) {
	c.Set(string(KeyEstablishment), establishment)
}

// GetEstablishment returns the establishment attached by the session middleware.
func GetEstablishment(c echo.Context) (*entity.Establishment, bool) {
	establishment, ok := c.Get(string(KeyEstablishment)).(*entity.Establishment)

	return establishment, ok && establishment != nil
}

// SetVisitor attaches the authenticated visitor.
func SetVisitor(c echo.Context, visitor *entity.Visitor) {
	c.Set(string(KeyVisitor), visitor)
}

// GetVisitor returns the visitor attached by the session middleware.
func GetVisitor(c echo.Context) (*entity.Visitor, bool) {
	visitor, ok := c.Get(string(KeyVisitor)).(*entity.Visitor)

	return visitor, ok && visitor != nil
}
