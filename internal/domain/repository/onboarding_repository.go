package repository

import (
	"context"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOnboardingRequestNotFound is returned when an onboarding request is not found.
var ErrOnboardingRequestNotFound = errors.New("onboarding request not found")

// OnboardingRepository defines the interface for onboarding request storage.
type OnboardingRepository interface {
	// Create persists a submitted onboarding request.
	Create(ctx context.Context, request *entity.OnboardingRequest) error

	// FindByID retrieves an onboarding request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OnboardingRequest, error)
}
