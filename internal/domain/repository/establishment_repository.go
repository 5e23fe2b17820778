// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for establishment persistence.
var (
	// ErrEstablishmentNotFound is returned when an establishment is not found.
	ErrEstablishmentNotFound = errors.New("establishment not found")
	// ErrDuplicateEstablishment is returned when an establishment email is already taken.
	ErrDuplicateEstablishment = errors.New("establishment already exists")
)

// EstablishmentRepository defines the interface for establishment lookups.
// Accounts are provisioned out of band, so Create is only used by operators and tests.
type EstablishmentRepository interface {
	// FindByEmail retrieves an establishment by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Establishment, error)

	// FindByID retrieves an establishment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error)

	// Create persists a new establishment account.
	Create(ctx context.Context, establishment *entity.Establishment) error
}
