package usecase

import "context"

// Verification code bounds, inclusive.
const (
	MinVerificationCode = 100000
	MaxVerificationCode = 999999
)

// VerificationUsecase issues one-time codes proving control of an unregistered email.
type VerificationUsecase interface {
	// IssueCode mails a fresh 6-digit code and returns it. Nothing is stored server-side.
	IssueCode(ctx context.Context, email string) (int, error)
}
