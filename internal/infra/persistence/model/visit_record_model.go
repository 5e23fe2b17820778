package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitRecordModel is the GORM-specific struct for the append-only 'visit_records' table.
// visitor_id carries no foreign key so records outlive their visitor.
type VisitRecordModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VisitorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index:idx_visit_records_establishment_created,priority:1"`
	CreatedAt       time.Time `gorm:"not null;index:idx_visit_records_establishment_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (VisitRecordModel) TableName() string {
	return "visit_records"
}

// VisitLogRow is the scan target for visit records joined with visitor names.
type VisitLogRow struct {
	VisitorID  uuid.UUID
	FirstName  string
	MiddleName string
	LastName   string
	CreatedAt  time.Time
}
