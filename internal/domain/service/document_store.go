package service

import (
	"context"
	"io"
)

// DocumentStore persists uploaded onboarding documents.
type DocumentStore interface {
	// Save writes the content under key.
	Save(ctx context.Context, key string, contentType string, r io.Reader) error

	// Delete removes a stored document. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
