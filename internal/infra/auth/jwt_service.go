// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"checkin/config"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"
	"checkin/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Each actor kind has its own signing key, so a token minted for one channel never
// verifies on the other.
type jwtService struct {
	secrets map[entity.ActorKind][]byte
	ttl     time.Duration
	clock   service.Clock
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Establishment == "" || cfg.SecretKey.Visitor == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	ttl := 72 * time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secrets: map[entity.ActorKind][]byte{
			entity.ActorEstablishment: []byte(cfg.SecretKey.Establishment),
			entity.ActorVisitor:       []byte(cfg.SecretKey.Visitor),
		},
		ttl:   ttl,
		clock: clock,
	}, nil
}

// Issue creates a session token that expires the configured lifetime after the current clock reading.
func (s *jwtService) Issue(kind entity.ActorKind, actorID uuid.UUID) (string, time.Time, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return "", time.Time{}, err
	}

	// NumericDate has second precision.
	now := s.clock.Now().Truncate(time.Second)
	expiresAt := now.Add(s.ttl)
	claims := &service.Claims{
		ActorID: actorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Verify checks the token signature with the kind's key and rejects expired tokens.
func (s *jwtService) Verify(kind entity.ActorKind, tokenString string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, service.ErrNoToken
	}

	secret, err := s.secretFor(kind)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.ActorID == uuid.Nil {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}

// SessionTTL returns the configured session lifetime.
func (s *jwtService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *jwtService) secretFor(kind entity.ActorKind) ([]byte, error) {
	secret, ok := s.secrets[kind]
	if !ok {
		return nil, errors.Errorf("unknown actor kind %q", kind)
	}

	return secret, nil
}
