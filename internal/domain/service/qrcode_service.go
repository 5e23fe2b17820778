package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for visitor pass generation and parsing.
type QRCodeService interface {
	// GenerateVisitorPass renders a PNG QR code that identifies the visitor.
	GenerateVisitorPass(visitorID uuid.UUID) ([]byte, error)

	// ParseVisitorPass extracts the visitor ID from a scanned pass payload.
	ParseVisitorPass(payload string) (uuid.UUID, error)
}
