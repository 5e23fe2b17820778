package impl

import (
	"context"
	"testing"

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

type visitorServiceFixtures struct {
	service     usecase.VisitorUsecase
	txManager   *mockRepo.MockTransactionManager
	visitorRepo *mockRepo.MockVisitorRepository
	txVisitors  *mockRepo.MockVisitorRepository
	hasher      *mockSvc.MockPasswordHasher
	qrCode      *mockSvc.MockQRCodeService
	clock       *mockSvc.MockClock
}

func createTestVisitorService(t *testing.T) visitorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	clock := mockSvc.NewMockClock(t)

	srv := NewVisitorService(VisitorServiceParams{
		TxManager:   txManager,
		VisitorRepo: visitorRepo,
		Hasher:      hasher,
		QRCode:      qrCode,
		Clock:       clock,
		Logger:      newDiscardLogger(),
	})

	return visitorServiceFixtures{
		service:     srv,
		txManager:   txManager,
		visitorRepo: visitorRepo,
		txVisitors:  mockRepo.NewMockVisitorRepository(t),
		hasher:      hasher,
		qrCode:      qrCode,
		clock:       clock,
	}
}

// expectTransaction runs the transactional callback against a factory that hands out txVisitors.
func (fx visitorServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewVisitorRepository().Return(fx.txVisitors)

			return fn(factory)
		})
}

func TestVisitorService_Register_Success(t *testing.T) {
	fx := createTestVisitorService(t)
	ctx := context.Background()

	input := usecase.RegisterVisitorInput{
		FirstName:  " Ana ",
		MiddleName: "M.",
		LastName:   "Cruz",
		Email:      "Ana@Example.com",
		Password:   "secret123",
	}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.clock.EXPECT().Now().Return(fixedNow)
	fx.expectTransaction(t, ctx)
	fx.txVisitors.EXPECT().CountByEmail(ctx, "ana@example.com").Return(int64(0), nil)
	fx.txVisitors.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visitor")).Return(nil)

	visitor, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, visitor.ID)
	assert.Equal(t, "ana@example.com", visitor.Email)
	assert.Equal(t, "hashed", visitor.PasswordHash)
	assert.Equal(t, "Ana M. Cruz", visitor.DisplayName())
	assert.Equal(t, fixedNow, visitor.CreatedAt)
}

func TestVisitorService_Register_EmailConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("counted before insert", func(t *testing.T) {
		fx := createTestVisitorService(t)
		fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
		fx.clock.EXPECT().Now().Return(fixedNow)
		fx.expectTransaction(t, ctx)
		fx.txVisitors.EXPECT().CountByEmail(ctx, "ana@example.com").Return(int64(1), nil)

		_, err := fx.service.Register(ctx, usecase.RegisterVisitorInput{Email: "ana@example.com", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrVisitorEmailConflict)
		fx.txVisitors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unique index rejects concurrent insert", func(t *testing.T) {
		fx := createTestVisitorService(t)
		fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
		fx.clock.EXPECT().Now().Return(fixedNow)
		fx.expectTransaction(t, ctx)
		fx.txVisitors.EXPECT().CountByEmail(ctx, "ana@example.com").Return(int64(0), nil)
		fx.txVisitors.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visitor")).Return(repository.ErrDuplicateVisitor)

		_, err := fx.service.Register(ctx, usecase.RegisterVisitorInput{Email: "ana@example.com", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrVisitorEmailConflict)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VISITOR_EMAIL_CONFLICT", appErr.ErrorCode())
	})
}

func TestVisitorService_Register_HashFailure(t *testing.T) {
	fx := createTestVisitorService(t)

	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(context.Background(), usecase.RegisterVisitorInput{Email: "ana@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestVisitorService_GetPass(t *testing.T) {
	ctx := context.Background()
	visitorID := uuid.New()

	t.Run("renders the pass", func(t *testing.T) {
		fx := createTestVisitorService(t)
		fx.visitorRepo.EXPECT().FindByID(ctx, visitorID).Return(&entity.Visitor{ID: visitorID}, nil)
		fx.qrCode.EXPECT().GenerateVisitorPass(visitorID).Return([]byte("png"), nil)

		png, err := fx.service.GetPass(ctx, visitorID)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("unknown visitor", func(t *testing.T) {
		fx := createTestVisitorService(t)
		fx.visitorRepo.EXPECT().FindByID(ctx, visitorID).Return(nil, repository.ErrVisitorNotFound)

		_, err := fx.service.GetPass(ctx, visitorID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
