package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"checkin/config"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	mockUC "checkin/internal/mocks/usecase"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionHandler(t *testing.T) (*SessionHandler, *mockUC.MockSessionUsecase) {
	sessionUC := mockUC.NewMockSessionUsecase(t)

	return NewSessionHandler(SessionHandlerParams{
		SessionUC: sessionUC,
		Config:    &config.Config{},
		Logger:    newDiscardLogger(),
	}), sessionUC
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestSessionHandler_Login_SetsCookieAndRedirects(t *testing.T) {
	h, sessionUC := newTestSessionHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().
		Login(mock.Anything, entity.ActorEstablishment, usecase.LoginInput{Email: "cafe@example.com", Password: "secret"}).
		Return(&usecase.LoginOutput{
			ActorID:   uuid.New(),
			Token:     "signed-token",
			ExpiresAt: time.Now().Add(72 * time.Hour),
			MaxAge:    72 * time.Hour,
		}, nil)

	form := url.Values{"email": {"cafe@example.com"}, "pass": {"secret"}}
	rec := serve(e, h.Login(entity.ActorEstablishment), http.MethodPost, "/establishment/login", form.Encode(), echo.MIMEApplicationForm)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/establishment/home", rec.Header().Get(echo.HeaderLocation))

	cookie := findCookie(rec, "jwtEstablishment")
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, 259200, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
}

func TestSessionHandler_Login_VisitorJSON(t *testing.T) {
	h, sessionUC := newTestSessionHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().
		Login(mock.Anything, entity.ActorVisitor, usecase.LoginInput{Email: "ana@example.com", Password: "secret"}).
		Return(&usecase.LoginOutput{Token: "visitor-token", MaxAge: 72 * time.Hour}, nil)

	rec := serve(e, h.Login(entity.ActorVisitor), http.MethodPost, "/visitor/login",
		`{"email":"ana@example.com","password":"secret"}`, echo.MIMEApplicationJSON)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/visitor/profile", rec.Header().Get(echo.HeaderLocation))
	require.NotNil(t, findCookie(rec, "jwtVisitor"))
	assert.Nil(t, findCookie(rec, "jwtEstablishment"))
}

func TestSessionHandler_Login_WrongCredentials(t *testing.T) {
	h, sessionUC := newTestSessionHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().
		Login(mock.Anything, entity.ActorEstablishment, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	form := url.Values{"email": {"cafe@example.com"}, "pass": {"nope"}}
	rec := serve(e, h.Login(entity.ActorEstablishment), http.MethodPost, "/establishment/login", form.Encode(), echo.MIMEApplicationForm)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wrong email or password")
	assert.Nil(t, findCookie(rec, "jwtEstablishment"))
}

func TestSessionHandler_Login_Validation(t *testing.T) {
	h, _ := newTestSessionHandler(t)
	e := newTestEcho()

	form := url.Values{"email": {"not-an-email"}}
	rec := serve(e, h.Login(entity.ActorEstablishment), http.MethodPost, "/establishment/login", form.Encode(), echo.MIMEApplicationForm)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), `"pass":"required"`)
}

func TestSessionHandler_LoginPage(t *testing.T) {
	withCookie := func(name, value string) func(echo.Context) {
		return func(c echo.Context) {
			c.Request().AddCookie(&http.Cookie{Name: name, Value: value})
		}
	}

	t.Run("no cookie shows the form", func(t *testing.T) {
		h, _ := newTestSessionHandler(t)
		rec := serve(newTestEcho(), h.LoginPage(entity.ActorVisitor), http.MethodGet, "/visitor/login", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"action":"/visitor/login"`)
	})

	t.Run("valid cookie goes home", func(t *testing.T) {
		h, sessionUC := newTestSessionHandler(t)
		sessionUC.EXPECT().
			Authenticate(mock.Anything, entity.ActorEstablishment, "valid").
			Return(&usecase.Actor{Kind: entity.ActorEstablishment}, nil)

		rec := serve(newTestEcho(), h.LoginPage(entity.ActorEstablishment), http.MethodGet, "/establishment/login", "", "",
			withCookie("jwtEstablishment", "valid"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/establishment/home", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("stale cookie is cleared", func(t *testing.T) {
		h, sessionUC := newTestSessionHandler(t)
		sessionUC.EXPECT().
			Authenticate(mock.Anything, entity.ActorEstablishment, "expired").
			Return(nil, domainerrors.ErrUnauthenticated)

		rec := serve(newTestEcho(), h.LoginPage(entity.ActorEstablishment), http.MethodGet, "/establishment/login", "", "",
			withCookie("jwtEstablishment", "expired"))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookie := findCookie(rec, "jwtEstablishment")
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Less(t, cookie.MaxAge, 0)
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	h, _ := newTestSessionHandler(t)

	rec := serve(newTestEcho(), h.Logout(entity.ActorVisitor), http.MethodGet, "/visitor/logout", "", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/visitor/login", rec.Header().Get(echo.HeaderLocation))

	cookie := findCookie(rec, "jwtVisitor")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}
