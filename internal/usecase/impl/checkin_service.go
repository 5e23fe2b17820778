package impl

import (
	"context"
	"log/slog"

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

// checkInService implements the CheckInUsecase interface.
type checkInService struct {
	visitorRepo repository.VisitorRepository
	visitRepo   repository.VisitRepository
	qrCode      service.QRCodeService
	clock       service.Clock
	logger      *slog.Logger
}

// CheckInServiceParams holds dependencies for CheckInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	VisitorRepo repository.VisitorRepository
	VisitRepo   repository.VisitRepository
	QRCode      service.QRCodeService
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewCheckInService is the constructor for checkInService.
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	return &checkInService{
		visitorRepo: params.VisitorRepo,
		visitRepo:   params.VisitRepo,
		qrCode:      params.QRCode,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *checkInService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckIn resolves the scanned visitor and appends a visit record for the establishment.
func (srv *checkInService) CheckIn(ctx context.Context, establishment *entity.Establishment, scannedPayload string) (*usecase.CheckInOutput, error) {
	if establishment == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	visitorID, err := srv.qrCode.ParseVisitorPass(scannedPayload)
	if err != nil {
		srv.log(ctx).Info("Unreadable visitor pass", slog.Any("error", err), slog.Any("establishment_id", establishment.ID))

		return nil, domainerrors.ErrUnknownVisitor.WrapMessage(err.Error())
	}

	visitor, err := srv.visitorRepo.FindByID(ctx, visitorID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			srv.log(ctx).Info("Scanned visitor not found", slog.Any("visitor_id", visitorID), slog.Any("establishment_id", establishment.ID))

			return nil, domainerrors.ErrUnknownVisitor.WrapMessage("visitor not found")
		}

		return nil, errors.Wrap(err, "failed to find visitor")
	}

	record := &entity.VisitRecord{
		ID:              uuid.New(),
		VisitorID:       visitor.ID,
		EstablishmentID: establishment.ID,
		CreatedAt:       srv.clock.Now(),
	}

	if err := srv.visitRepo.Append(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to append visit record",
			slog.Any("error", err),
			slog.Any("visitor_id", visitor.ID),
			slog.Any("establishment_id", establishment.ID),
		)

		return nil, errors.Join(domainerrors.ErrVisitRecordFailed, err)
	}

	srv.log(ctx).Info("Visitor checked in",
		slog.Any("record_id", record.ID),
		slog.Any("visitor_id", visitor.ID),
		slog.Any("establishment_id", establishment.ID),
	)

	return &usecase.CheckInOutput{
		RecordID:    record.ID,
		VisitorID:   visitor.ID,
		VisitorName: visitor.DisplayName(),
		CheckedInAt: record.CreatedAt,
	}, nil
}

// ListVisitLogs returns the newest visits at the establishment together with the total count.
func (srv *checkInService) ListVisitLogs(ctx context.Context, establishmentID uuid.UUID, limit int) (*usecase.VisitLogsOutput, error) {
	switch {
	case limit <= 0:
		limit = usecase.DefaultVisitLogLimit
	case limit > usecase.MaxVisitLogLimit:
		limit = usecase.MaxVisitLogLimit
	}

	records, err := srv.visitRepo.FindByEstablishment(ctx, establishmentID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visit logs")
	}

	count, err := srv.visitRepo.CountByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count visit logs")
	}

	return &usecase.VisitLogsOutput{
		Records: records,
		Count:   count,
	}, nil
}
