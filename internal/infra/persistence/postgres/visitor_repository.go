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

// visitorRepository implements the repository.VisitorRepository interface.
type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository is the constructor for visitorRepository.
func NewVisitorRepository(db *gorm.DB) repository.VisitorRepository {
	return &visitorRepository{
		db: db,
	}
}

// FindByID retrieves a visitor by the ID encoded in their pass.
func (repo *visitorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	var visitorM model.VisitorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitorNotFound
		}

		return nil, errors.Wrap(err, "failed to find visitor by ID")
	}

	return toVisitorDomain(&visitorM), nil
}

// FindByEmail retrieves a visitor by login email.
func (repo *visitorRepository) FindByEmail(ctx context.Context, email string) (*entity.Visitor, error) {
	var visitorM model.VisitorModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(&visitorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitorNotFound
		}

		return nil, errors.Wrap(err, "failed to find visitor by email")
	}

	return toVisitorDomain(&visitorM), nil
}

// CountByEmail returns how many visitors are registered with the email.
func (repo *visitorRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitorModel{}).
		Where("email = ?", strings.TrimSpace(email)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visitors by email")
	}

	return count, nil
}

// Create persists a new visitor.
func (repo *visitorRepository) Create(ctx context.Context, visitor *entity.Visitor) error {
	visitorM := fromVisitorDomain(visitor)

	if err := repo.db.WithContext(ctx).Create(visitorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVisitor
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required visitor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visitor")
	}

	visitor.ID = visitorM.ID
	visitor.CreatedAt = visitorM.CreatedAt
	visitor.UpdatedAt = visitorM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toVisitorDomain(data *model.VisitorModel) *entity.Visitor {
	if data == nil {
		return nil
	}

	return &entity.Visitor{
		ID:    data.ID,
		Email: data.Email,
		Name: entity.PersonName{
			First:  data.FirstName,
			Middle: data.MiddleName,
			Last:   data.LastName,
		},
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromVisitorDomain(data *entity.Visitor) *model.VisitorModel {
	if data == nil {
		return nil
	}

	return &model.VisitorModel{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.Name.First,
		MiddleName:   data.Name.Middle,
		LastName:     data.Name.Last,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
