package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"checkin/config"
	"checkin/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailTransport(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name    string
		mail    *config.MailConfig
		wantErr string
	}{
		{name: "not configured", mail: nil},
		{name: "log", mail: &config.MailConfig{Provider: "log"}},
		{name: "mailersend", mail: func() *config.MailConfig {
			cfg := &config.MailConfig{Provider: "mailersend", From: "noreply@example.com"}
			cfg.MailerSend.APIKey = "mlsn.test"

			return cfg
		}()},
		{name: "mailersend without key", mail: &config.MailConfig{Provider: "mailersend", From: "noreply@example.com"}, wantErr: "api key is required"},
		{name: "smtp", mail: func() *config.MailConfig {
			cfg := &config.MailConfig{Provider: "smtp", From: "noreply@example.com"}
			cfg.SMTP.Host = "localhost"
			cfg.SMTP.Port = 1025

			return cfg
		}()},
		{name: "smtp without host", mail: &config.MailConfig{Provider: "smtp", From: "noreply@example.com"}, wantErr: "smtp host and port are required"},
		{name: "unknown", mail: &config.MailConfig{Provider: "pigeon"}, wantErr: "unknown mail provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport, err := NewMailTransport(TransportParams{
				Config: &config.Config{Mail: tt.mail},
				Logger: logger,
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, transport)
		})
	}
}

func TestLogTransport_Send(t *testing.T) {
	var buf bytes.Buffer
	transport := NewLogTransport(slog.New(slog.NewTextHandler(&buf, nil)))

	err := transport.Send(context.Background(), &service.Mail{
		To:      "ana@example.com",
		Subject: "Request Code",
		Text:    "Code: 123456",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ana@example.com")
	assert.Contains(t, buf.String(), "Code: 123456")
}

func TestBuildMessage(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		msg := string(buildMessage("noreply@example.com", "ana@example.com", &service.Mail{
			Subject: "Request Code",
			Text:    "Code: 123456",
		}))

		assert.True(t, strings.HasPrefix(msg, "From: noreply@example.com\r\nTo: ana@example.com\r\nSubject: Request Code\r\n"))
		assert.Contains(t, msg, "Content-Type: text/plain; charset=utf-8\r\n\r\nCode: 123456\r\n")
		assert.NotContains(t, msg, "multipart/alternative")
	})

	t.Run("text and html", func(t *testing.T) {
		msg := string(buildMessage("noreply@example.com", "ana@example.com", &service.Mail{
			Subject: "Request Code",
			Text:    "Code: 123456",
			HTML:    "<p>Code: <b>123456</b></p>",
		}))

		assert.Contains(t, msg, "multipart/alternative; boundary="+mixedBoundary)
		assert.Contains(t, msg, "<p>Code: <b>123456</b></p>")
		assert.True(t, strings.HasSuffix(msg, "--"+mixedBoundary+"--\r\n"))
	})
}

func TestSMTPTransport_RejectsEmptyRecipient(t *testing.T) {
	transport, err := NewSMTPTransport("localhost", 1025, "noreply@example.com", "", "")
	require.NoError(t, err)

	err = transport.Send(context.Background(), &service.Mail{To: "  ", Subject: "x", Text: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty recipient email")
}
