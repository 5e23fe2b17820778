package postgres

import (
	"context"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// onboardingRepository implements the repository.OnboardingRepository interface.
type onboardingRepository struct {
	db *gorm.DB
}

// NewOnboardingRepository is the constructor for onboardingRepository.
func NewOnboardingRepository(db *gorm.DB) repository.OnboardingRepository {
	return &onboardingRepository{
		db: db,
	}
}

// Create persists a submitted onboarding request.
func (repo *onboardingRepository) Create(ctx context.Context, request *entity.OnboardingRequest) error {
	if err := repo.db.WithContext(ctx).Create(fromOnboardingDomain(request)).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required onboarding information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create onboarding request")
	}

	return nil
}

// FindByID retrieves an onboarding request by its unique ID.
func (repo *onboardingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OnboardingRequest, error) {
	var requestM model.OnboardingRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOnboardingRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find onboarding request by ID")
	}

	return toOnboardingDomain(&requestM), nil
}

// --- Mapper Functions ---

func toOnboardingDomain(data *model.OnboardingRequestModel) *entity.OnboardingRequest {
	if data == nil {
		return nil
	}

	return &entity.OnboardingRequest{
		ID:          data.ID,
		Name:        data.Name,
		Owner:       data.Owner,
		Email:       data.Email,
		Address:     data.Address,
		Contact:     data.Contact,
		Message:     data.Message,
		PermitKey:   data.PermitKey,
		ValidIDKey:  data.ValidIDKey,
		SubmittedAt: data.SubmittedAt,
	}
}

func fromOnboardingDomain(data *entity.OnboardingRequest) *model.OnboardingRequestModel {
	if data == nil {
		return nil
	}

	return &model.OnboardingRequestModel{
		ID:          data.ID,
		Name:        data.Name,
		Owner:       data.Owner,
		Email:       data.Email,
		Address:     data.Address,
		Contact:     data.Contact,
		Message:     data.Message,
		PermitKey:   data.PermitKey,
		ValidIDKey:  data.ValidIDKey,
		SubmittedAt: data.SubmittedAt,
	}
}
