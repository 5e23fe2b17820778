package usecase

import (
	"context"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterVisitorInput defines the data required to register a visitor.
type RegisterVisitorInput struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Password   string
}

// VisitorUsecase defines visitor self-service operations.
type VisitorUsecase interface {
	// Register creates a visitor account.
	Register(ctx context.Context, input RegisterVisitorInput) (*entity.Visitor, error)

	// GetPass renders the visitor's QR pass as PNG.
	GetPass(ctx context.Context, visitorID uuid.UUID) ([]byte, error)
}
