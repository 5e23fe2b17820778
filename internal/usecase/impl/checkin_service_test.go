package impl

import (
	"context"
	"testing"
	"time"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	mockRepo "checkin/internal/mocks/repository"
	mockSvc "checkin/internal/mocks/service"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkInServiceFixtures struct {
	service     usecase.CheckInUsecase
	visitorRepo *mockRepo.MockVisitorRepository
	visitRepo   *mockRepo.MockVisitRepository
	qrCode      *mockSvc.MockQRCodeService
	clock       *mockSvc.MockClock
}

func createTestCheckInService(t *testing.T) checkInServiceFixtures {
	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	clock := mockSvc.NewMockClock(t)

	srv := NewCheckInService(CheckInServiceParams{
		VisitorRepo: visitorRepo,
		VisitRepo:   visitRepo,
		QRCode:      qrCode,
		Clock:       clock,
		Logger:      newDiscardLogger(),
	})

	return checkInServiceFixtures{
		service:     srv,
		visitorRepo: visitorRepo,
		visitRepo:   visitRepo,
		qrCode:      qrCode,
		clock:       clock,
	}
}

func TestCheckInService_CheckIn_ReturnsDisplayName(t *testing.T) {
	fx := createTestCheckInService(t)
	ctx := context.Background()

	establishment := &entity.Establishment{ID: uuid.New(), Name: "Cafe"}
	visitor := &entity.Visitor{
		ID:   uuid.New(),
		Name: entity.PersonName{First: "Ana", Middle: "M.", Last: "Cruz"},
	}

	fx.qrCode.EXPECT().ParseVisitorPass(visitor.ID.String()).Return(visitor.ID, nil)
	fx.visitorRepo.EXPECT().FindByID(ctx, visitor.ID).Return(visitor, nil)
	fx.clock.EXPECT().Now().Return(fixedNow)

	var appended *entity.VisitRecord
	fx.visitRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		Run(func(_ context.Context, record *entity.VisitRecord) { appended = record }).
		Return(nil)

	out, err := fx.service.CheckIn(ctx, establishment, visitor.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ana M. Cruz", out.VisitorName)
	assert.Equal(t, visitor.ID, out.VisitorID)
	assert.Equal(t, fixedNow, out.CheckedInAt)

	require.NotNil(t, appended)
	assert.Equal(t, out.RecordID, appended.ID)
	assert.Equal(t, visitor.ID, appended.VisitorID)
	assert.Equal(t, establishment.ID, appended.EstablishmentID)
	assert.Equal(t, fixedNow, appended.CreatedAt)
}

func TestCheckInService_CheckIn_TwiceAppendsTwice(t *testing.T) {
	fx := createTestCheckInService(t)
	ctx := context.Background()

	establishment := &entity.Establishment{ID: uuid.New()}
	visitor := &entity.Visitor{ID: uuid.New(), Name: entity.PersonName{First: "Ana", Last: "Cruz"}}

	fx.qrCode.EXPECT().ParseVisitorPass("pass").Return(visitor.ID, nil).Times(2)
	fx.visitorRepo.EXPECT().FindByID(ctx, visitor.ID).Return(visitor, nil).Times(2)
	fx.clock.EXPECT().Now().Return(fixedNow).Once()
	fx.clock.EXPECT().Now().Return(fixedNow.Add(time.Second)).Once()

	var ids []uuid.UUID
	fx.visitRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		Run(func(_ context.Context, record *entity.VisitRecord) { ids = append(ids, record.ID) }).
		Return(nil).
		Times(2)

	first, err := fx.service.CheckIn(ctx, establishment, "pass")
	require.NoError(t, err)
	second, err := fx.service.CheckIn(ctx, establishment, "pass")
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, first.RecordID, second.RecordID)
	assert.Equal(t, "Ana Cruz", second.VisitorName)
}

func TestCheckInService_CheckIn_UnknownVisitorAppendsNothing(t *testing.T) {
	ctx := context.Background()
	establishment := &entity.Establishment{ID: uuid.New()}
	visitorID := uuid.New()

	tests := []struct {
		name  string
		setup func(fx checkInServiceFixtures)
	}{
		{
			name: "unparsable payload",
			setup: func(fx checkInServiceFixtures) {
				fx.qrCode.EXPECT().ParseVisitorPass("pass").Return(uuid.Nil, errors.New("not a visitor pass"))
			},
		},
		{
			name: "visitor does not exist",
			setup: func(fx checkInServiceFixtures) {
				fx.qrCode.EXPECT().ParseVisitorPass("pass").Return(visitorID, nil)
				fx.visitorRepo.EXPECT().FindByID(ctx, visitorID).Return(nil, repository.ErrVisitorNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckInService(t)
			tt.setup(fx)

			out, err := fx.service.CheckIn(ctx, establishment, "pass")
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrUnknownVisitor)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 404, appErr.HTTPCode())
			fx.visitRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckInService_CheckIn_AppendFailure(t *testing.T) {
	fx := createTestCheckInService(t)
	ctx := context.Background()

	visitor := &entity.Visitor{ID: uuid.New(), Name: entity.PersonName{First: "Ana"}}
	dbErr := errors.New("disk full")

	fx.qrCode.EXPECT().ParseVisitorPass("pass").Return(visitor.ID, nil)
	fx.visitorRepo.EXPECT().FindByID(ctx, visitor.ID).Return(visitor, nil)
	fx.clock.EXPECT().Now().Return(fixedNow)
	fx.visitRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.VisitRecord")).Return(dbErr)

	out, err := fx.service.CheckIn(ctx, &entity.Establishment{ID: uuid.New()}, "pass")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrVisitRecordFailed)
	assert.ErrorIs(t, err, dbErr)
}

func TestCheckInService_CheckIn_NoEstablishment(t *testing.T) {
	fx := createTestCheckInService(t)

	_, err := fx.service.CheckIn(context.Background(), nil, "pass")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCheckInService_ListVisitLogs(t *testing.T) {
	ctx := context.Background()
	establishmentID := uuid.New()
	logs := []*entity.VisitLog{
		{VisitorID: uuid.New(), VisitorName: "Ana M. Cruz", VisitedAt: fixedNow},
		{VisitorID: uuid.New(), VisitorName: "Ben Ong", VisitedAt: fixedNow.Add(-time.Hour)},
	}

	t.Run("explicit limit", func(t *testing.T) {
		fx := createTestCheckInService(t)
		fx.visitRepo.EXPECT().FindByEstablishment(ctx, establishmentID, 10).Return(logs, nil)
		fx.visitRepo.EXPECT().CountByEstablishment(ctx, establishmentID).Return(int64(42), nil)

		out, err := fx.service.ListVisitLogs(ctx, establishmentID, 10)
		require.NoError(t, err)
		assert.Equal(t, logs, out.Records)
		assert.Equal(t, int64(42), out.Count)
	})

	t.Run("default limit", func(t *testing.T) {
		fx := createTestCheckInService(t)
		fx.visitRepo.EXPECT().FindByEstablishment(ctx, establishmentID, usecase.DefaultVisitLogLimit).Return(nil, nil)
		fx.visitRepo.EXPECT().CountByEstablishment(ctx, establishmentID).Return(int64(0), nil)

		out, err := fx.service.ListVisitLogs(ctx, establishmentID, 0)
		require.NoError(t, err)
		assert.Empty(t, out.Records)
	})

	t.Run("limit capped", func(t *testing.T) {
		fx := createTestCheckInService(t)
		fx.visitRepo.EXPECT().FindByEstablishment(ctx, establishmentID, usecase.MaxVisitLogLimit).Return(logs, nil)
		fx.visitRepo.EXPECT().CountByEstablishment(ctx, establishmentID).Return(int64(2), nil)

		out, err := fx.service.ListVisitLogs(ctx, establishmentID, 100000)
		require.NoError(t, err)
		assert.Equal(t, logs, out.Records)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestCheckInService(t)
		fx.visitRepo.EXPECT().FindByEstablishment(ctx, establishmentID, 5).Return(nil, errors.New("timeout"))

		_, err := fx.service.ListVisitLogs(ctx, establishmentID, 5)
		require.Error(t, err)
	})
}
