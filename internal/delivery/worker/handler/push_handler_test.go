package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/constants"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/service"
	"checkin/internal/errors"
	mockUC "checkin/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOnboardingID = "7f1c2d3e-4b5a-4c6d-8e9f-0a1b2c3d4e5f"

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockOnboardingUsecase) {
	t.Helper()

	onboardingUC := mockUC.NewMockOnboardingUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.DiscardHandler),
		OnboardingUC: onboardingUC,
	})

	return h, onboardingUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/onboarding"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event service.OnboardingSubmittedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := service.OnboardingSubmittedEvent{
		RequestID:    "req-from-event",
		OnboardingID: testOnboardingID,
		Name:         "Kape Corner",
		Owner:        "Lea Santos",
		Email:        "owner@kape.example",
		Contact:      "09171234567",
		PermitKey:    "onboarding/" + testOnboardingID + "/permit.pdf",
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(uc *mockUC.MockOnboardingUsecase)
		wantStatus int
	}{
		{
			name: "notifies reviewers",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), map[string]string{"event_type": constants.EventOnboardingSubmitted})
			},
			setupMock: func(uc *mockUC.MockOnboardingUsecase) {
				uc.EXPECT().NotifyReviewers(mock.Anything, mock.MatchedBy(func(got *service.OnboardingSubmittedEvent) bool {
					return got.OnboardingID == testOnboardingID && got.Name == "Kape Corner"
				})).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "delivery failure is redelivered",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), nil)
			},
			setupMock: func(uc *mockUC.MockOnboardingUsecase) {
				uc.EXPECT().NotifyReviewers(mock.Anything, mock.Anything).
					Return(errors.Join(domainerrors.ErrDeliveryFailed, errors.New("smtp unavailable")))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "validation failure is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), nil)
			},
			setupMock: func(uc *mockUC.MockOnboardingUsecase) {
				uc.EXPECT().NotifyReviewers(mock.Anything, mock.Anything).
					Return(domainerrors.ErrValidationFailed.WrapMessage("missing event"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid onboarding id is acknowledged",
			body: func(t *testing.T) string {
				bad := event
				bad.OnboardingID = "not-a-uuid"

				return pushBody(t, encodeEvent(t, bad), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unsupported event type is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), map[string]string{"event_type": "visitor.deleted"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "undecodable data",
			body: func(t *testing.T) string {
				return pushBody(t, "%%%not-base64", nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data is not an event",
			body: func(t *testing.T) string {
				return pushBody(t, base64.StdEncoding.EncodeToString([]byte("plain text")), nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "malformed envelope",
			body: func(t *testing.T) string {
				return "{"
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPushHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(uc)
			}

			rec := doPush(h, tt.body(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	h, uc := newTestPushHandler(t)

	event := service.OnboardingSubmittedEvent{RequestID: "req-from-event", OnboardingID: testOnboardingID}
	uc.EXPECT().NotifyReviewers(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *service.OnboardingSubmittedEvent) {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := doPush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-from-attributes"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)

	t.Run("event field", func(t *testing.T) {
		var msg PubSubMessage
		event := &service.OnboardingSubmittedEvent{RequestID: "req-event"}

		assert.Equal(t, "req-event", h.extractRequestID(context.Background(), &msg, event))
	})

	t.Run("context", func(t *testing.T) {
		var msg PubSubMessage
		ctx := deliverycontext.WithRequestID(context.Background(), "req-ctx")

		assert.Equal(t, "req-ctx", h.extractRequestID(ctx, &msg, &service.OnboardingSubmittedEvent{}))
	})

	t.Run("generated", func(t *testing.T) {
		var msg PubSubMessage

		assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, &service.OnboardingSubmittedEvent{}))
	})
}

func TestPushHandler_VerifiesTokenOutsideDevelop(t *testing.T) {
	onboardingUC := mockUC.NewMockOnboardingUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.DiscardHandler),
		OnboardingUC: onboardingUC,
	})
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }
	rec := doPush(h, pushBody(t, "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}
