package qrcode

import (
	"encoding/json"
	"testing"

	"checkin/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
	}))
}

func TestQRCodeService_GenerateVisitorPass(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateVisitorPass(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseVisitorPass(t *testing.T) {
	service := NewQRCodeService(256, "M")
	visitorID := uuid.New()

	jsonData, err := json.Marshal(VisitorPassData{VisitorID: visitorID.String(), Type: "visitor_pass"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "json pass", payload: string(jsonData)},
		{name: "bare id", payload: visitorID.String()},
		{name: "bare id with whitespace", payload: "  " + visitorID.String() + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedID, err := service.ParseVisitorPass(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, visitorID, parsedID)
		})
	}
}

func TestQRCodeService_ParseVisitorPass_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	wrongType, err := json.Marshal(VisitorPassData{VisitorID: uuid.New().String(), Type: "subscription"})
	require.NoError(t, err)
	badID, err := json.Marshal(VisitorPassData{VisitorID: "not-a-valid-uuid", Type: "visitor_pass"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{name: "empty", payload: "", wantErr: "empty visitor pass payload"},
		{name: "garbage", payload: "hello", wantErr: "failed to parse visitor ID"},
		{name: "broken json", payload: "{not json", wantErr: "failed to unmarshal visitor pass data"},
		{name: "wrong type", payload: string(wrongType), wantErr: "invalid QR code type"},
		{name: "bad id", payload: string(badID), wantErr: "failed to parse visitor ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseVisitorPass(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
