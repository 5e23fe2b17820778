package auth

import (
	"strings"
	"testing"
	"time"

	"checkin/config"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Establishment = "test_establishment_secret_key_very_long_for_testing"
	cfg.SecretKey.Visitor = "test_visitor_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T) (service.TokenService, *fixedClock) {
	t.Helper()

	clock := &fixedClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc, err := NewJWTService(newTestConfig(), clock)
	require.NoError(t, err)

	return svc, clock
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, clock := newTestJWTService(t)
	actorID := uuid.New()

	token, expiresAt, err := svc.Issue(entity.ActorVisitor, actorID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.now.Add(72*time.Hour), expiresAt)

	claims, err := svc.Verify(entity.ActorVisitor, token)
	require.NoError(t, err)
	assert.Equal(t, actorID, claims.ActorID)
	assert.Equal(t, actorID.String(), claims.Subject)
}

func TestJWTService_KindsUseSeparateKeys(t *testing.T) {
	svc, _ := newTestJWTService(t)

	token, _, err := svc.Issue(entity.ActorEstablishment, uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(entity.ActorVisitor, token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_Expiry(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{SessionTTL: time.Hour}
	clock := &fixedClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc, err := NewJWTService(cfg, clock)
	require.NoError(t, err)

	actorID := uuid.New()
	issuedAt := clock.now

	token, expiresAt, err := svc.Issue(entity.ActorEstablishment, actorID)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	clock.now = expiresAt.Add(-time.Second)
	_, err = svc.Verify(entity.ActorEstablishment, token)
	require.NoError(t, err)

	clock.now = expiresAt
	_, err = svc.Verify(entity.ActorEstablishment, token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken), "token must be rejected at exp")

	clock.now = issuedAt.Add(time.Hour + time.Second)
	_, err = svc.Verify(entity.ActorEstablishment, token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken), "token must be rejected after exp")
}

func TestJWTService_ThreeDayTokenRejectedAfterExpiry(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, _, err := svc.Issue(entity.ActorVisitor, uuid.New())
	require.NoError(t, err)

	clock.now = clock.now.Add(72*time.Hour + time.Second)
	_, err = svc.Verify(entity.ActorVisitor, token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc, _ := newTestJWTService(t)

	claims, err := svc.Verify(entity.ActorVisitor, "")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrNoToken))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, clock := newTestJWTService(t)

	valid, _, err := svc.Issue(entity.ActorVisitor, uuid.New())
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": clock.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format"},
		{name: "tampered payload", token: tampered},
		{name: "alg none", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(entity.ActorVisitor, tt.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, service.ErrInvalidToken))
		})
	}
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg, &fixedClock{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_SessionTTLFromConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{SessionTTL: 2 * time.Hour}

	svc, err := NewJWTService(cfg, &fixedClock{})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.SessionTTL())
}
