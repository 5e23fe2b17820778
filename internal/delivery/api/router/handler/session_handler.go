package handler

import (
	"log/slog"
	"net/http"
	"time"

	"checkin/config"
	"checkin/internal/delivery/api/response"
	"checkin/internal/delivery/api/validator"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/constants"
	"checkin/internal/domain/entity"
	"checkin/internal/errors"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SessionHandler serves the login and logout endpoints of both actor kinds.
type SessionHandler struct {
	sessionUC    usecase.SessionUsecase
	secureCookie bool
	logger       *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC:    params.SessionUC,
		secureCookie: params.Config.Env.Env == constants.EnvProduction,
		logger:       params.Logger,
	}
}

// LoginRequest is the login form. The password field keeps the form name "pass".
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"pass" validate:"required"`
}

// LoginPageResponse describes where the login form posts.
type LoginPageResponse struct {
	Kind   string `json:"kind"`
	Action string `json:"action"`
	Method string `json:"method"`
}

// LoginPage short-circuits to the kind's home when the request already carries a valid session.
// A stale cookie is cleared so the client is not bounced between login and root.
func (h *SessionHandler) LoginPage(kind entity.ActorKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(kind.CookieName()); err == nil && cookie.Value != "" {
			ctx := c.Request().Context()
			if _, err := h.sessionUC.Authenticate(ctx, kind, cookie.Value); err == nil {
				return c.Redirect(http.StatusFound, kind.HomePath())
			}

			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Stale session cookie on login page",
				slog.String("kind", kind.String()),
			)
			h.clearCookie(c, kind)
		}

		return response.Success(c, http.StatusOK, LoginPageResponse{
			Kind:   kind.String(),
			Action: kind.LoginPath(),
			Method: http.MethodPost,
		})
	}
}

// Login checks the credentials, sets the session cookie and redirects to the kind's home.
func (h *SessionHandler) Login(kind entity.ActorKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "Invalid login input")
		}

		if err := c.Validate(&req); err != nil {
			return response.ValidationFailed(c, validator.FieldErrors(err))
		}

		output, err := h.sessionUC.Login(c.Request().Context(), kind, usecase.LoginInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		c.SetCookie(&http.Cookie{
			Name:     kind.CookieName(),
			Value:    output.Token,
			Path:     "/",
			MaxAge:   int(output.MaxAge / time.Second),
			Expires:  output.ExpiresAt,
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		return c.Redirect(http.StatusSeeOther, kind.HomePath())
	}
}

// Logout overwrites the session cookie with an expired empty value.
func (h *SessionHandler) Logout(kind entity.ActorKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		h.clearCookie(c, kind)

		return c.Redirect(http.StatusFound, kind.LoginPath())
	}
}

func (h *SessionHandler) clearCookie(c echo.Context, kind entity.ActorKind) {
	c.SetCookie(&http.Cookie{
		Name:     kind.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
