// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	"checkin/internal/errors"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	establishmentRepo repository.EstablishmentRepository
	visitorRepo       repository.VisitorRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	logger            *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	EstablishmentRepo repository.EstablishmentRepository
	VisitorRepo       repository.VisitorRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	Logger            *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		establishmentRepo: params.EstablishmentRepo,
		visitorRepo:       params.VisitorRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// credentials is the part of an account the login flow needs.
type credentials struct {
	actorID      uuid.UUID
	passwordHash string
}

// Login checks the submitted credentials and issues a session token for the kind.
func (srv *sessionService) Login(ctx context.Context, kind entity.ActorKind, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown actor kind " + kind.String())
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Login attempt", slog.String("kind", kind.String()))

	creds, err := srv.findCredentials(ctx, kind, email)
	if err != nil {
		if isAccountNotFound(err) {
			srv.log(ctx).Info("Login rejected", slog.String("kind", kind.String()), slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up account", slog.Any("error", err), slog.String("kind", kind.String()))

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, creds.passwordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("kind", kind.String()), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.Issue(kind, creds.actorID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err), slog.Any("actor_id", creds.actorID))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("kind", kind.String()), slog.Any("actor_id", creds.actorID))

	return &usecase.LoginOutput{
		ActorID:   creds.actorID,
		Token:     token,
		ExpiresAt: expiresAt,
		MaxAge:    srv.tokenService.SessionTTL(),
	}, nil
}

func (srv *sessionService) findCredentials(ctx context.Context, kind entity.ActorKind, email string) (*credentials, error) {
	switch kind {
	case entity.ActorEstablishment:
		establishment, err := srv.establishmentRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}

		return &credentials{actorID: establishment.ID, passwordHash: establishment.PasswordHash}, nil
	default:
		visitor, err := srv.visitorRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}

		return &credentials{actorID: visitor.ID, passwordHash: visitor.PasswordHash}, nil
	}
}

// Authenticate verifies the token against the kind's key and loads the actor it names.
func (srv *sessionService) Authenticate(ctx context.Context, kind entity.ActorKind, token string) (*usecase.Actor, error) {
	claims, err := srv.tokenService.Verify(kind, token)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrUnauthenticated, err)
	}

	actor := &usecase.Actor{Kind: kind}
	switch kind {
	case entity.ActorEstablishment:
		actor.Establishment, err = srv.establishmentRepo.FindByID(ctx, claims.ActorID)
	case entity.ActorVisitor:
		actor.Visitor, err = srv.visitorRepo.FindByID(ctx, claims.ActorID)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown actor kind " + kind.String())
	}

	if err != nil {
		if isAccountNotFound(err) {
			srv.log(ctx).Warn("Session names an unknown actor", slog.String("kind", kind.String()), slog.Any("actor_id", claims.ActorID))

			return nil, errors.Join(domainerrors.ErrUnauthenticated, err)
		}

		return nil, errors.Wrap(err, "failed to resolve session actor")
	}

	return actor, nil
}

func isAccountNotFound(err error) bool {
	return errors.Is(err, repository.ErrEstablishmentNotFound) || errors.Is(err, repository.ErrVisitorNotFound)
}

// normalizeEmail trims and lower-cases an address before it reaches a store or transport.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
