package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "checkin/internal/delivery/context"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles an endpoint per client IP and per path parameter.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
	}
}

// PerIPAndParam limits requests by client IP and, when present, by the named path parameter.
// Limiter failures let the request through.
func (m *RateLimitMiddleware) PerIPAndParam(scope, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			keys := []string{scope + ":ip:" + c.RealIP()}
			if value := strings.ToLower(strings.TrimSpace(c.Param(param))); value != "" {
				keys = append(keys, scope+":"+param+":"+value)
			}

			ctx := c.Request().Context()
			log := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

			for _, key := range keys {
				allowed, err := m.limiter.Allow(ctx, key)
				if err != nil {
					log.Warn("Rate limiter unavailable", slog.Any("error", err))

					continue
				}

				if !allowed {
					log.Info("Rate limit exceeded", slog.String("scope", scope), slog.String("ip", c.RealIP()))

					return domainerrors.ErrRateLimited
				}
			}

			return next(c)
		}
	}
}
