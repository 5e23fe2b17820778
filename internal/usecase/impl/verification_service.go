package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	deliverycontext "checkin/internal/delivery/context"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	"checkin/internal/errors"
	"checkin/internal/usecase"

	"go.uber.org/fx"
)

const verificationSubject = "Request Code"

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	visitorRepo repository.VisitorRepository
	mail        service.MailTransport
	logger      *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	VisitorRepo repository.VisitorRepository
	Mail        service.MailTransport
	Logger      *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		visitorRepo: params.VisitorRepo,
		mail:        params.Mail,
		logger:      params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueCode mails a fresh code to an email that no visitor has registered yet.
func (srv *verificationService) IssueCode(ctx context.Context, email string) (int, error) {
	email = normalizeEmail(email)
	if email == "" {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	count, err := srv.visitorRepo.CountByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to count visitors by email", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to count visitors by email")
	}

	if count > 0 {
		srv.log(ctx).Info("Verification code refused for registered email")

		return 0, domainerrors.ErrDuplicateEmail
	}

	code, err := generateVerificationCode()
	if err != nil {
		return 0, errors.Wrap(err, "failed to generate verification code")
	}

	mail := &service.Mail{
		To:      email,
		Subject: verificationSubject,
		Text:    fmt.Sprintf("Code: %d", code),
	}

	if err := srv.mail.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to deliver verification code", slog.Any("error", err))

		return 0, errors.Join(domainerrors.ErrDeliveryFailed, err)
	}

	srv.log(ctx).Info("Verification code sent")

	return code, nil
}

// generateVerificationCode draws uniformly from the inclusive code range.
func generateVerificationCode() (int, error) {
	span := big.NewInt(usecase.MaxVerificationCode - usecase.MinVerificationCode + 1)

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return usecase.MinVerificationCode + int(n.Int64()), nil
}
