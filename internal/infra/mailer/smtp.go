package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"checkin/internal/domain/service"

	"github.com/pkg/errors"
)

const mixedBoundary = "checkin-alternative-boundary"

// smtpTransport delivers mail through a plain SMTP relay.
type smtpTransport struct {
	addr string
	host string
	from string
	auth smtp.Auth
}

// NewSMTPTransport creates an SMTP transport. Authentication is skipped when user is empty,
// which suits local relays such as Mailpit.
func NewSMTPTransport(host string, port int, from, user, pass string) (service.MailTransport, error) {
	host = strings.TrimSpace(host)
	if host == "" || port <= 0 {
		return nil, errors.New("smtp host and port are required")
	}
	if strings.TrimSpace(from) == "" {
		return nil, errors.New("mail from address is required")
	}

	t := &smtpTransport{
		addr: net.JoinHostPort(host, strconv.Itoa(port)),
		host: host,
		from: strings.TrimSpace(from),
	}
	if user = strings.TrimSpace(user); user != "" {
		t.auth = smtp.PlainAuth("", user, strings.TrimSpace(pass), host)
	}

	return t, nil
}

// Send delivers the message. net/smtp has no context support, so ctx is only checked up front.
func (t *smtpTransport) Send(ctx context.Context, mail *service.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	to := strings.TrimSpace(mail.To)
	if to == "" {
		return errors.New("empty recipient email")
	}

	if err := smtp.SendMail(t.addr, t.auth, t.from, []string{to}, buildMessage(t.from, to, mail)); err != nil {
		return errors.Wrap(err, "smtp send failed")
	}

	return nil
}

// buildMessage renders a multipart/alternative message; the HTML part is omitted when empty.
func buildMessage(from, to string, mail *service.Mail) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mail.Subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")

	if strings.TrimSpace(mail.HTML) == "" {
		fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
		fmt.Fprintf(&buf, "%s\r\n", mail.Text)

		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", mixedBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", mixedBoundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", mail.Text)

	fmt.Fprintf(&buf, "--%s\r\n", mixedBoundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", mail.HTML)

	fmt.Fprintf(&buf, "--%s--\r\n", mixedBoundary)

	return buf.Bytes()
}
