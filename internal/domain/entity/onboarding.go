package entity

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingRequest is an application from a venue that wants an establishment account.
// It is reviewed by a person outside the system, so it carries no status.
type OnboardingRequest struct {
	ID          uuid.UUID
	Name        string // Business name.
	Owner       string
	Email       string
	Address     string
	Contact     string
	Message     string
	PermitKey   string // Blob key of the uploaded business permit.
	ValidIDKey  string // Blob key of the uploaded owner identification.
	SubmittedAt time.Time
}
