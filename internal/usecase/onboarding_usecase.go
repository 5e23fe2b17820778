package usecase

import (
	"context"
	"io"

	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"
)

// Document is an uploaded file handed to the onboarding workflow.
type Document struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// SubmitOnboardingInput defines an application for an establishment account.
type SubmitOnboardingInput struct {
	Name    string
	Owner   string
	Email   string
	Address string
	Contact string
	Message string
	Permit  Document
	ValidID Document
}

// OnboardingUsecase defines the establishment onboarding workflow.
type OnboardingUsecase interface {
	// Submit stores the documents and the request, then announces it to reviewers.
	Submit(ctx context.Context, input SubmitOnboardingInput) (*entity.OnboardingRequest, error)

	// NotifyReviewers emails every configured reviewer about a submitted request.
	NotifyReviewers(ctx context.Context, event *service.OnboardingSubmittedEvent) error
}
