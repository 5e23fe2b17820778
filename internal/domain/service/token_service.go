package service

import (
	"time"

	"checkin/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNoToken is returned when a session token is absent.
	ErrNoToken = errors.New("no session token")
	// ErrInvalidToken covers malformed, forged, wrong-kind and expired tokens.
	ErrInvalidToken = errors.New("invalid session token")
)

// Claims defines the custom claims for session tokens. The actor kind is not
// carried in the payload; it is implied by the key the token was signed with.
type Claims struct {
	ActorID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, expiring session tokens.
type TokenService interface {
	// Issue creates a session token for the actor using the configured lifetime.
	Issue(kind entity.ActorKind, actorID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify checks the token against the key of the given kind and returns its claims.
	Verify(kind entity.ActorKind, token string) (*Claims, error)

	// SessionTTL returns the configured session lifetime.
	SessionTTL() time.Duration
}
