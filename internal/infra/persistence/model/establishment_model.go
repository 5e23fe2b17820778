package model

import (
	"time"

	"github.com/google/uuid"
)

// EstablishmentModel is the GORM-specific struct for the 'establishments' table.
type EstablishmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Owner        string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:text"`
	Contact      string    `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EstablishmentModel) TableName() string {
	return "establishments"
}
