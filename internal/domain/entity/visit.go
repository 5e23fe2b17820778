package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitRecord is one check-in event. Records are append-only and repeated scans of
// the same visitor produce separate records.
type VisitRecord struct {
	ID              uuid.UUID
	VisitorID       uuid.UUID // Weak reference; no cascade on visitor deletion.
	EstablishmentID uuid.UUID
	CreatedAt       time.Time
}

// VisitLog is a visit record joined with the visitor's display name.
type VisitLog struct {
	VisitorID   uuid.UUID
	VisitorName string
	VisitedAt   time.Time
}
