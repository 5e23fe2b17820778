package service

import "context"

// Mail is a plain message handed to a transport.
type Mail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// MailTransport defines the interface for outbound email delivery.
type MailTransport interface {
	// Send delivers the message or returns an error describing why it could not.
	Send(ctx context.Context, mail *Mail) error
}
