// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the credentials submitted on either login form.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the session token to be set as a cookie.
type LoginOutput struct {
	ActorID   uuid.UUID
	Token     string
	ExpiresAt time.Time
	MaxAge    time.Duration
}

// Actor is the authenticated party of a request. Exactly one of
// Establishment or Visitor is set, matching Kind.
type Actor struct {
	Kind          entity.ActorKind
	Establishment *entity.Establishment
	Visitor       *entity.Visitor
}

// SessionUsecase defines login and session resolution for both actor kinds.
type SessionUsecase interface {
	// Login checks credentials and issues a session token. Unknown email and wrong
	// password fail with the same error.
	Login(ctx context.Context, kind entity.ActorKind, input LoginInput) (*LoginOutput, error)

	// Authenticate verifies a session token and resolves the actor it names.
	Authenticate(ctx context.Context, kind entity.ActorKind, token string) (*Actor, error)
}
