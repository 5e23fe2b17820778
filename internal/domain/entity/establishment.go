// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Establishment is a venue allowed to record visits. Accounts are created by an
// operator once an OnboardingRequest has been reviewed.
type Establishment struct {
	ID           uuid.UUID // Immutable identity, used as the session subject.
	Email        string    // Login identifier.
	PasswordHash string    // bcrypt hash of the account password.
	Name         string    // Business name shown to staff.
	Owner        string    // Name of the person responsible for the venue.
	Address      string    // Physical address of the venue.
	Contact      string    // Phone or other contact detail.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
