package middleware

import (
	"log/slog"
	"net/http"

	"checkin/internal/delivery/api/response"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/errors"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionMiddleware guards routes with the cookie session of one actor kind.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// RequirePage protects browser routes. Missing and rejected sessions both go to the
// kind's own login page, which clears a stale cookie.
func (m *SessionMiddleware) RequirePage(kind entity.ActorKind) echo.MiddlewareFunc {
	return m.require(kind, func(c echo.Context) error {
		return c.Redirect(http.StatusFound, kind.LoginPath())
	})
}

// RequireData protects JSON routes. Any missing or rejected session is a 401.
func (m *SessionMiddleware) RequireData(kind entity.ActorKind) echo.MiddlewareFunc {
	return m.require(kind, response.Unauthenticated)
}

func (m *SessionMiddleware) require(kind entity.ActorKind, reject func(c echo.Context) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(kind.CookieName())
			if err != nil || cookie.Value == "" {
				return reject(c)
			}

			ctx := c.Request().Context()
			actor, err := m.sessionUC.Authenticate(ctx, kind, cookie.Value)
			if err != nil {
				if !errors.Is(err, domainerrors.ErrUnauthenticated) {
					return errors.WithStack(err)
				}

				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Session rejected",
					slog.String("kind", kind.String()),
					slog.Any("error", err),
				)

				return reject(c)
			}

			switch kind {
			case entity.ActorEstablishment:
				deliverycontext.SetEstablishment(c, actor.Establishment)
			case entity.ActorVisitor:
				deliverycontext.SetVisitor(c, actor.Visitor)
			}

			return next(c)
		}
	}
}
