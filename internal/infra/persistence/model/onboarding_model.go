package model

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingRequestModel is the GORM-specific struct for the 'onboarding_requests' table.
type OnboardingRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Owner       string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null;index"`
	Address     string    `gorm:"type:text;not null"`
	Contact     string    `gorm:"type:varchar(64);not null"`
	Message     string    `gorm:"type:text"`
	PermitKey   string    `gorm:"type:varchar(512);not null"`
	ValidIDKey  string    `gorm:"type:varchar(512);not null"`
	SubmittedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OnboardingRequestModel) TableName() string {
	return "onboarding_requests"
}
