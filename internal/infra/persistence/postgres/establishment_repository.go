package postgres

import (
	"context"
	"strings"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// establishmentRepository implements the repository.EstablishmentRepository interface.
type establishmentRepository struct {
	db *gorm.DB
}

// NewEstablishmentRepository is the constructor for establishmentRepository.
func NewEstablishmentRepository(db *gorm.DB) repository.EstablishmentRepository {
	return &establishmentRepository{
		db: db,
	}
}

// FindByEmail retrieves an establishment by its login email.
func (repo *establishmentRepository) FindByEmail(ctx context.Context, email string) (*entity.Establishment, error) {
	var establishmentM model.EstablishmentModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(&establishmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find establishment by email")
	}

	return toEstablishmentDomain(&establishmentM), nil
}

// FindByID retrieves an establishment by its unique ID.
func (repo *establishmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error) {
	var establishmentM model.EstablishmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&establishmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find establishment by ID")
	}

	return toEstablishmentDomain(&establishmentM), nil
}

// Create persists a new establishment account.
func (repo *establishmentRepository) Create(ctx context.Context, establishment *entity.Establishment) error {
	establishmentM := fromEstablishmentDomain(establishment)

	if err := repo.db.WithContext(ctx).Create(establishmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEstablishment
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create establishment")
	}

	establishment.ID = establishmentM.ID
	establishment.CreatedAt = establishmentM.CreatedAt
	establishment.UpdatedAt = establishmentM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toEstablishmentDomain(data *model.EstablishmentModel) *entity.Establishment {
	if data == nil {
		return nil
	}

	return &entity.Establishment{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Owner:        data.Owner,
		Address:      data.Address,
		Contact:      data.Contact,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromEstablishmentDomain(data *entity.Establishment) *model.EstablishmentModel {
	if data == nil {
		return nil
	}

	return &model.EstablishmentModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Owner:        data.Owner,
		Address:      data.Address,
		Contact:      data.Contact,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
