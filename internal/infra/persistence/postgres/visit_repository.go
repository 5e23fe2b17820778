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

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// Append stores a new visit record.
func (repo *visitRepository) Append(ctx context.Context, record *entity.VisitRecord) error {
	recordM := fromVisitRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append visit record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindByEstablishment returns the newest visits at an establishment joined with visitor names.
// Visits whose visitor row is gone are skipped; CountByEstablishment still counts them.
func (repo *visitRepository) FindByEstablishment(ctx context.Context, establishmentID uuid.UUID, limit int) ([]*entity.VisitLog, error) {
	var rows []*model.VisitLogRow

	if err := visitLogQuery(repo.db.WithContext(ctx), establishmentID, limit).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by establishment")
	}

	logs := make([]*entity.VisitLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, toVisitLogDomain(row))
	}

	return logs, nil
}

// CountByEstablishment returns the total number of visits at an establishment.
func (repo *visitRepository) CountByEstablishment(ctx context.Context, establishmentID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitRecordModel{}).
		Where("establishment_id = ?", establishmentID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visits by establishment")
	}

	return count, nil
}

func visitLogQuery(db *gorm.DB, establishmentID uuid.UUID, limit int) *gorm.DB {
	return db.
		Model(&model.VisitRecordModel{}).
		Select("visit_records.visitor_id, visitors.first_name, visitors.middle_name, visitors.last_name, visit_records.created_at").
		Joins("INNER JOIN visitors ON visitors.id = visit_records.visitor_id").
		Where("visit_records.establishment_id = ?", establishmentID).
		Order("visit_records.created_at DESC").
		Limit(limit)
}

// --- Mapper Functions ---

func toVisitLogDomain(row *model.VisitLogRow) *entity.VisitLog {
	name := entity.PersonName{
		First:  row.FirstName,
		Middle: row.MiddleName,
		Last:   row.LastName,
	}

	return &entity.VisitLog{
		VisitorID:   row.VisitorID,
		VisitorName: name.Display(),
		VisitedAt:   row.CreatedAt,
	}
}

func fromVisitRecordDomain(data *entity.VisitRecord) *model.VisitRecordModel {
	if data == nil {
		return nil
	}

	return &model.VisitRecordModel{
		ID:              data.ID,
		VisitorID:       data.VisitorID,
		EstablishmentID: data.EstablishmentID,
		CreatedAt:       data.CreatedAt,
	}
}
