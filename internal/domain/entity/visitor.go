// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PersonName is the structured name of a visitor.
type PersonName struct {
	First  string
	Middle string
	Last   string
}

// Display joins the non-empty name parts with single spaces.
func (n PersonName) Display() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{n.First, n.Middle, n.Last} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " ")
}

// Visitor is a registered person whose pass can be scanned at establishments.
type Visitor struct {
	ID           uuid.UUID  // Encoded in the visitor's QR pass.
	Email        string     // Login identifier; checked for uniqueness before registration.
	Name         PersonName // Structured name used for display on check-in.
	PasswordHash string     // bcrypt hash of the account password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns the name an establishment sees after a scan.
func (v *Visitor) DisplayName() string {
	return v.Name.Display()
}
