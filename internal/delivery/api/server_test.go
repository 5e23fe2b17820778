package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"checkin/config"
	apimiddleware "checkin/internal/delivery/api/middleware"
	"checkin/internal/delivery/api/router"
	"checkin/internal/delivery/api/router/handler"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	mockSvc "checkin/internal/mocks/service"
	mockUC "checkin/internal/mocks/usecase"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo           *echo.Echo
	sessionUC      *mockUC.MockSessionUsecase
	checkInUC      *mockUC.MockCheckInUsecase
	verificationUC *mockUC.MockVerificationUsecase
	limiter        *mockSvc.MockRateLimiter
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "10MB"
	logger := slog.New(slog.DiscardHandler)

	ts := &testServer{
		sessionUC:      mockUC.NewMockSessionUsecase(t),
		checkInUC:      mockUC.NewMockCheckInUsecase(t),
		verificationUC: mockUC.NewMockVerificationUsecase(t),
		limiter:        mockSvc.NewMockRateLimiter(t),
	}

	r := router.NewRouter(router.RouterParams{
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
			SessionUC: ts.sessionUC, Config: cfg, Logger: logger,
		}),
		EstablishmentHandler: handler.NewEstablishmentHandler(handler.EstablishmentHandlerParams{
			CheckInUC: ts.checkInUC, VerificationUC: ts.verificationUC, Logger: logger,
		}),
		VisitorHandler: handler.NewVisitorHandler(handler.VisitorHandlerParams{
			VisitorUC: mockUC.NewMockVisitorUsecase(t), Logger: logger,
		}),
		OnboardingHandler: handler.NewOnboardingHandler(handler.OnboardingHandlerParams{
			OnboardingUC: mockUC.NewMockOnboardingUsecase(t), Logger: logger,
		}),
		SessionMiddleware: apimiddleware.NewSessionMiddleware(apimiddleware.SessionMiddlewareParams{
			SessionUC: ts.sessionUC, Logger: logger,
		}),
		RateLimitMiddleware: apimiddleware.NewRateLimitMiddleware(apimiddleware.RateLimitMiddlewareParams{
			Limiter: ts.limiter, Logger: logger,
		}),
	})

	ts.echo = newEcho(cfg, logger)
	r.RegisterRoutes(ts.echo)

	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/establishment/login", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_PageRouteRedirectsWithoutCookie(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/visitor/profile", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/visitor/login", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_DataRouteRejectsWithoutCookie(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/establishment/qr", strings.NewReader(`{"decodedText":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := ts.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestServer_CheckInWithSession(t *testing.T) {
	ts := newTestServer(t)

	establishment := &entity.Establishment{ID: uuid.New(), Name: "Kape Corner"}
	visitorID := uuid.New()
	ts.sessionUC.EXPECT().Authenticate(mock.Anything, entity.ActorEstablishment, "token-1").
		Return(&usecase.Actor{Kind: entity.ActorEstablishment, Establishment: establishment}, nil)
	ts.checkInUC.EXPECT().CheckIn(mock.Anything, establishment, visitorID.String()).
		Return(&usecase.CheckInOutput{
			RecordID:    uuid.New(),
			VisitorID:   visitorID,
			VisitorName: "Ana M. Cruz",
			CheckedInAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/establishment/qr", strings.NewReader(`{"decodedText":"`+visitorID.String()+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: entity.ActorEstablishment.CookieName(), Value: "token-1"})
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana M. Cruz"`)
}

func TestServer_CheckInUnknownVisitor(t *testing.T) {
	ts := newTestServer(t)

	establishment := &entity.Establishment{ID: uuid.New()}
	ts.sessionUC.EXPECT().Authenticate(mock.Anything, entity.ActorEstablishment, "token-1").
		Return(&usecase.Actor{Kind: entity.ActorEstablishment, Establishment: establishment}, nil)
	ts.checkInUC.EXPECT().CheckIn(mock.Anything, establishment, "garbage").
		Return(nil, domainerrors.ErrUnknownVisitor)

	req := httptest.NewRequest(http.MethodPost, "/establishment/qr", strings.NewReader(`{"decodedText":"garbage"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: entity.ActorEstablishment.CookieName(), Value: "token-1"})
	rec := ts.do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_VISITOR")
}

func TestServer_IssueCodeIsRateLimited(t *testing.T) {
	ts := newTestServer(t)

	ts.limiter.EXPECT().Allow(mock.Anything, "code:ip:203.0.113.7").Return(true, nil)
	ts.limiter.EXPECT().Allow(mock.Anything, "code:email:ana@example.com").Return(true, nil)
	ts.verificationUC.EXPECT().IssueCode(mock.Anything, "ana@example.com").Return(123456, nil)

	req := httptest.NewRequest(http.MethodGet, "/establishment/code/ana@example.com", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":123456`)
}
