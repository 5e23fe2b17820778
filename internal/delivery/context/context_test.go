package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestActors(t *testing.T) {
	c := newEchoContext()

	_, ok := GetEstablishment(c)
	assert.False(t, ok)
	_, ok = GetVisitor(c)
	assert.False(t, ok)

	establishment := &entity.Establishment{ID: uuid.New()}
	visitor := &entity.Visitor{ID: uuid.New()}
	SetEstablishment(c, establishment)
	SetVisitor(c, visitor)

	gotEstablishment, ok := GetEstablishment(c)
	assert.True(t, ok)
	assert.Same(t, establishment, gotEstablishment)

	gotVisitor, ok := GetVisitor(c)
	assert.True(t, ok)
	assert.Same(t, visitor, gotVisitor)
}
