package service

import (
	"context"
	"time"
)

// OnboardingSubmittedEvent announces a new onboarding request to reviewers.
type OnboardingSubmittedEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	OnboardingID string    `json:"onboarding_id"`
	Name         string    `json:"name"`
	Owner        string    `json:"owner"`
	Email        string    `json:"email"`
	Contact      string    `json:"contact"`
	Message      string    `json:"message,omitempty"`
	PermitKey    string    `json:"permit_key"`
	ValidIDKey   string    `json:"valid_id_key"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOnboardingSubmitted publishes an onboarding event for async processing
	PublishOnboardingSubmitted(ctx context.Context, event *OnboardingSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
