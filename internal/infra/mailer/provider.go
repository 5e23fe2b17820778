// Package mailer provides the outbound mail transports selected by configuration.
package mailer

import (
	"log/slog"
	"time"

	"checkin/config"
	"checkin/internal/domain/constants"
	"checkin/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sendTimeout = 10 * time.Second

// TransportParams holds dependencies for MailTransport, injected by Fx
type TransportParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailTransport creates a MailTransport based on configuration
func NewMailTransport(params TransportParams) (service.MailTransport, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderLog {
		logger.Info("Mail not configured, using log transport")

		return NewLogTransport(logger), nil
	}

	switch cfg.Provider {
	case constants.MailProviderMailerSend:
		logger.Info("Using MailerSend mail transport", slog.String("from", cfg.From))

		return NewMailerSendTransport(cfg.MailerSend.APIKey, cfg.FromName, cfg.From, logger)

	case constants.MailProviderSMTP:
		logger.Info("Using SMTP mail transport",
			slog.String("host", cfg.SMTP.Host),
			slog.Int("port", cfg.SMTP.Port),
		)

		return NewSMTPTransport(cfg.SMTP.Host, cfg.SMTP.Port, cfg.From, cfg.SMTP.Username, cfg.SMTP.Password)

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
