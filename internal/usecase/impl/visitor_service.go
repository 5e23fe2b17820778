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

// visitorService implements the VisitorUsecase interface.
type visitorService struct {
	txManager   repository.TransactionManager
	visitorRepo repository.VisitorRepository
	hasher      service.PasswordHasher
	qrCode      service.QRCodeService
	clock       service.Clock
	logger      *slog.Logger
}

// VisitorServiceParams holds dependencies for VisitorService, injected by Fx.
type VisitorServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VisitorRepo repository.VisitorRepository
	Hasher      service.PasswordHasher
	QRCode      service.QRCodeService
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewVisitorService is the constructor for visitorService.
func NewVisitorService(params VisitorServiceParams) usecase.VisitorUsecase {
	return &visitorService{
		txManager:   params.TxManager,
		visitorRepo: params.VisitorRepo,
		hasher:      params.Hasher,
		qrCode:      params.QRCode,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *visitorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a visitor account. The verification code is compared by the caller.
func (srv *visitorService) Register(ctx context.Context, input usecase.RegisterVisitorInput) (*entity.Visitor, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Registering visitor")

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := srv.clock.Now()
	visitor := &entity.Visitor{
		ID:    uuid.New(),
		Email: email,
		Name: entity.PersonName{
			First:  strings.TrimSpace(input.FirstName),
			Middle: strings.TrimSpace(input.MiddleName),
			Last:   strings.TrimSpace(input.LastName),
		},
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		visitorRepo := repoFactory.NewVisitorRepository()

		count, err := visitorRepo.CountByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to count visitors by email")
		}
		if count > 0 {
			return domainerrors.ErrVisitorEmailConflict
		}

		if err := visitorRepo.Create(ctx, visitor); err != nil {
			if errors.Is(err, repository.ErrDuplicateVisitor) {
				return errors.Join(domainerrors.ErrVisitorEmailConflict, err)
			}

			return errors.Wrap(err, "failed to create visitor")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrVisitorEmailConflict) {
			srv.log(ctx).Info("Visitor registration conflicts with an existing email")
		} else {
			srv.log(ctx).Error("Failed to register visitor", slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("Visitor registered", slog.Any("visitor_id", visitor.ID))

	return visitor, nil
}

// GetPass renders the QR pass that establishments scan at check-in.
func (srv *visitorService) GetPass(ctx context.Context, visitorID uuid.UUID) ([]byte, error) {
	visitor, err := srv.visitorRepo.FindByID(ctx, visitorID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("visitor not found")
		}

		return nil, errors.Wrap(err, "failed to find visitor")
	}

	png, err := srv.qrCode.GenerateVisitorPass(visitor.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to render visitor pass", slog.Any("error", err), slog.Any("visitor_id", visitor.ID))

		return nil, errors.Wrap(err, "failed to render visitor pass")
	}

	return png, nil
}
