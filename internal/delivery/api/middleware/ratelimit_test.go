package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockSvc "checkin/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRateLimitTestServer(t *testing.T) (*echo.Echo, *mockSvc.MockRateLimiter) {
	limiter := mockSvc.NewMockRateLimiter(t)
	mw := NewRateLimitMiddleware(RateLimitMiddlewareParams{Limiter: limiter, Logger: newDiscardLogger()})

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/establishment/code/:email", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, mw.PerIPAndParam("code", "email"))

	return e, limiter
}

func newCodeRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/establishment/code/Ana@Example.com", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")

	return req
}

func TestRateLimitMiddleware_Allows(t *testing.T) {
	e, limiter := newRateLimitTestServer(t)

	limiter.EXPECT().Allow(mock.Anything, "code:ip:203.0.113.7").Return(true, nil)
	limiter.EXPECT().Allow(mock.Anything, "code:email:ana@example.com").Return(true, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newCodeRequest())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_Rejects(t *testing.T) {
	e, limiter := newRateLimitTestServer(t)

	limiter.EXPECT().Allow(mock.Anything, "code:ip:203.0.113.7").Return(true, nil)
	limiter.EXPECT().Allow(mock.Anything, "code:email:ana@example.com").Return(false, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newCodeRequest())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	e, limiter := newRateLimitTestServer(t)

	limiter.EXPECT().Allow(mock.Anything, mock.AnythingOfType("string")).Return(true, errors.New("redis: connection refused"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newCodeRequest())
	assert.Equal(t, http.StatusOK, rec.Code)
}
