package mailer

import (
	"context"
	"log/slog"

	"checkin/internal/domain/service"
)

// logTransport writes messages to the logger instead of sending them. Development only.
type logTransport struct {
	logger *slog.Logger
}

// NewLogTransport creates a transport that only logs.
func NewLogTransport(logger *slog.Logger) service.MailTransport {
	return &logTransport{logger: logger}
}

func (t *logTransport) Send(ctx context.Context, mail *service.Mail) error {
	t.logger.InfoContext(ctx, "[DevMailer] Message not sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
		slog.String("text", mail.Text),
	)

	return nil
}
