// Package qrcode renders and parses visitor pass QR codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"checkin/config"
	"checkin/internal/domain/service"
	"checkin/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize     = 256
	visitorPassType = "visitor_pass"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// VisitorPassData represents the payload encoded in a visitor pass
type VisitorPassData struct {
	VisitorID string `json:"visitor_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateVisitorPass generates a PNG QR code identifying the visitor
func (s *qrcodeService) GenerateVisitorPass(visitorID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(VisitorPassData{
		VisitorID: visitorID.String(),
		Type:      visitorPassType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal visitor pass data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseVisitorPass accepts either the JSON pass payload or a bare visitor ID,
// which is what older passes and manual entry produce.
func (s *qrcodeService) ParseVisitorPass(payload string) (uuid.UUID, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return uuid.Nil, errors.New("empty visitor pass payload")
	}

	if !strings.HasPrefix(payload, "{") {
		visitorID, err := uuid.Parse(payload)
		if err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to parse visitor ID")
		}

		return visitorID, nil
	}

	var data VisitorPassData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal visitor pass data")
	}

	if data.Type != visitorPassType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	visitorID, err := uuid.Parse(data.VisitorID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse visitor ID")
	}

	return visitorID, nil
}
