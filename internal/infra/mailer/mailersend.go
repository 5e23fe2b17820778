package mailer

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"checkin/internal/domain/service"

	"github.com/mailersend/mailersend-go"
	"github.com/pkg/errors"
)

// mailerSendTransport delivers mail through the MailerSend HTTP API.
type mailerSendTransport struct {
	client *mailersend.Mailersend
	from   mailersend.From
	logger *slog.Logger
}

// NewMailerSendTransport creates a MailerSend-backed transport.
func NewMailerSendTransport(apiKey, fromName, fromEmail string, logger *slog.Logger) (service.MailTransport, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("mailersend api key is required")
	}
	if strings.TrimSpace(fromEmail) == "" {
		return nil, errors.New("mail from address is required")
	}

	return &mailerSendTransport{
		client: mailersend.NewMailersend(apiKey),
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
		logger: logger,
	}, nil
}

// Send delivers the message through MailerSend.
func (t *mailerSendTransport) Send(ctx context.Context, mail *service.Mail) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	msg := t.client.Email.NewMessage()
	msg.SetFrom(t.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: mail.To}})
	msg.SetSubject(mail.Subject)

	if strings.TrimSpace(mail.Text) != "" {
		msg.SetText(mail.Text)
	}
	if strings.TrimSpace(mail.HTML) != "" {
		msg.SetHTML(mail.HTML)
	}

	res, err := t.client.Email.Send(ctx, msg)
	if err != nil {
		return errors.Wrap(err, "mailersend send failed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))

		return errors.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	t.logger.DebugContext(ctx, "[MailerSend] Message accepted",
		slog.Int("status", res.StatusCode),
		slog.String("message_id", res.Header.Get("X-Message-Id")),
	)

	return nil
}
