package repository

import (
	"context"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for visitor persistence.
var (
	// ErrVisitorNotFound is returned when a visitor is not found.
	ErrVisitorNotFound = errors.New("visitor not found")
	// ErrDuplicateVisitor is returned when the unique email index rejects an insert.
	ErrDuplicateVisitor = errors.New("visitor already exists")
)

// VisitorRepository defines the interface for visitor-related database operations.
type VisitorRepository interface {
	// FindByID retrieves a visitor by the ID encoded in their pass.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error)

	// FindByEmail retrieves a visitor by login email.
	FindByEmail(ctx context.Context, email string) (*entity.Visitor, error)

	// CountByEmail returns how many visitors are registered with the email.
	CountByEmail(ctx context.Context, email string) (int64, error)

	// Create persists a new visitor.
	Create(ctx context.Context, visitor *entity.Visitor) error
}
