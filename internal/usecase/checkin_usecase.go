package usecase

import (
	"context"
	"time"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// DefaultVisitLogLimit caps the dashboard listing when the caller passes no limit.
	DefaultVisitLogLimit = 50
	// MaxVisitLogLimit is the largest page the dashboard will return.
	MaxVisitLogLimit = 200
)

// CheckInOutput reports who was checked in.
type CheckInOutput struct {
	RecordID    uuid.UUID
	VisitorID   uuid.UUID
	VisitorName string
	CheckedInAt time.Time
}

// VisitLogsOutput is the establishment dashboard listing.
type VisitLogsOutput struct {
	Records []*entity.VisitLog
	Count   int64
}

// CheckInUsecase records visits and lists them for establishments.
type CheckInUsecase interface {
	// CheckIn resolves the scanned pass and appends a visit record. Every call appends.
	CheckIn(ctx context.Context, establishment *entity.Establishment, scannedPayload string) (*CheckInOutput, error)

	// ListVisitLogs returns the newest visits at the establishment and the total count.
	ListVisitLogs(ctx context.Context, establishmentID uuid.UUID, limit int) (*VisitLogsOutput, error)
}
