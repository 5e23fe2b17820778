package repository

import (
	"context"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitRepository defines the interface for the append-only visit log.
type VisitRepository interface {
	// Append stores a new visit record. It never deduplicates.
	Append(ctx context.Context, record *entity.VisitRecord) error

	// FindByEstablishment returns the most recent visits at an establishment,
	// newest first, joined with visitor names.
	FindByEstablishment(ctx context.Context, establishmentID uuid.UUID, limit int) ([]*entity.VisitLog, error)

	// CountByEstablishment returns the total number of visits at an establishment.
	CountByEstablishment(ctx context.Context, establishmentID uuid.UUID) (int64, error)
}
