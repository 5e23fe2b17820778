package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	"checkin/internal/errors"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	permitDocument  = "permit"
	validIDDocument = "valid-id"

	maxExtensionLength = 10
)

// onboardingService implements the OnboardingUsecase interface.
type onboardingService struct {
	txManager repository.TransactionManager
	documents service.DocumentStore
	publisher service.EventPublisher
	mail      service.MailTransport
	clock     service.Clock
	reviewers []string
	logger    *slog.Logger
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Documents service.DocumentStore
	Publisher service.EventPublisher
	Mail      service.MailTransport
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(params OnboardingServiceParams) usecase.OnboardingUsecase {
	var reviewers []string
	if params.Config != nil && params.Config.Onboarding != nil {
		for _, email := range params.Config.Onboarding.ReviewerEmails {
			if email = normalizeEmail(email); email != "" {
				reviewers = append(reviewers, email)
			}
		}
	}

	return &onboardingService{
		txManager: params.TxManager,
		documents: params.Documents,
		publisher: params.Publisher,
		mail:      params.Mail,
		clock:     params.Clock,
		reviewers: reviewers,
		logger:    params.Logger,
	}
}

func (srv *onboardingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores both documents, records the request and announces it to reviewers.
// A publish failure is logged and does not fail the submission.
func (srv *onboardingService) Submit(ctx context.Context, input usecase.SubmitOnboardingInput) (*entity.OnboardingRequest, error) {
	requestID := uuid.New()
	permitKey := documentKey(requestID, permitDocument, input.Permit.Filename)
	validIDKey := documentKey(requestID, validIDDocument, input.ValidID.Filename)

	srv.log(ctx).Info("Submitting onboarding request", slog.Any("onboarding_id", requestID))

	if err := srv.saveDocument(ctx, permitKey, input.Permit); err != nil {
		return nil, err
	}
	if err := srv.saveDocument(ctx, validIDKey, input.ValidID); err != nil {
		srv.discardDocuments(ctx, permitKey)

		return nil, err
	}

	request := &entity.OnboardingRequest{
		ID:          requestID,
		Name:        strings.TrimSpace(input.Name),
		Owner:       strings.TrimSpace(input.Owner),
		Email:       normalizeEmail(input.Email),
		Address:     strings.TrimSpace(input.Address),
		Contact:     strings.TrimSpace(input.Contact),
		Message:     strings.TrimSpace(input.Message),
		PermitKey:   permitKey,
		ValidIDKey:  validIDKey,
		SubmittedAt: srv.clock.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOnboardingRepository().Create(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create onboarding request")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store onboarding request", slog.Any("error", err), slog.Any("onboarding_id", requestID))
		srv.discardDocuments(ctx, permitKey, validIDKey)

		return nil, err
	}

	event := &service.OnboardingSubmittedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		OnboardingID: request.ID.String(),
		Name:         request.Name,
		Owner:        request.Owner,
		Email:        request.Email,
		Contact:      request.Contact,
		Message:      request.Message,
		PermitKey:    request.PermitKey,
		ValidIDKey:   request.ValidIDKey,
		SubmittedAt:  request.SubmittedAt,
	}
	if err := srv.publisher.PublishOnboardingSubmitted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish onboarding event", slog.Any("error", err), slog.Any("onboarding_id", requestID))
	}

	srv.log(ctx).Info("Onboarding request submitted", slog.Any("onboarding_id", requestID))

	return request, nil
}

func (srv *onboardingService) saveDocument(ctx context.Context, key string, doc usecase.Document) error {
	if doc.Content == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("missing document " + path.Base(key))
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := srv.documents.Save(ctx, key, contentType, doc.Content); err != nil {
		srv.log(ctx).Error("Failed to store onboarding document", slog.Any("error", err), slog.String("key", key))

		return errors.Join(domainerrors.ErrDocumentStoreFailed, err)
	}

	return nil
}

func (srv *onboardingService) discardDocuments(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := srv.documents.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to remove orphaned document", slog.Any("error", err), slog.String("key", key))
		}
	}
}

// NotifyReviewers mails every configured reviewer. Any failed delivery fails the call so the
// event is redelivered.
func (srv *onboardingService) NotifyReviewers(ctx context.Context, event *service.OnboardingSubmittedEvent) error {
	if event == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("missing onboarding event")
	}

	if len(srv.reviewers) == 0 {
		srv.log(ctx).Warn("No onboarding reviewers configured", slog.String("onboarding_id", event.OnboardingID))

		return nil
	}

	subject := "New establishment onboarding request: " + event.Name
	body := reviewerMailBody(event)

	var errs []error
	for _, reviewer := range srv.reviewers {
		mail := &service.Mail{To: reviewer, Subject: subject, Text: body}
		if err := srv.mail.Send(ctx, mail); err != nil {
			srv.log(ctx).Error("Failed to notify reviewer", slog.Any("error", err), slog.String("onboarding_id", event.OnboardingID))
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(domainerrors.ErrDeliveryFailed, errors.Join(errs...))
	}

	srv.log(ctx).Info("Onboarding reviewers notified",
		slog.String("onboarding_id", event.OnboardingID),
		slog.Int("reviewers", len(srv.reviewers)),
	)

	return nil
}

func reviewerMailBody(event *service.OnboardingSubmittedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Request: %s\n", event.OnboardingID)
	fmt.Fprintf(&b, "Establishment: %s\n", event.Name)
	fmt.Fprintf(&b, "Owner: %s\n", event.Owner)
	fmt.Fprintf(&b, "Email: %s\n", event.Email)
	fmt.Fprintf(&b, "Contact: %s\n", event.Contact)
	fmt.Fprintf(&b, "Submitted: %s\n", event.SubmittedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Permit: %s\n", event.PermitKey)
	fmt.Fprintf(&b, "Valid ID: %s\n", event.ValidIDKey)
	if event.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", event.Message)
	}

	return b.String()
}

// documentKey builds onboarding/<id>/<name><ext>, keeping the upload's extension when it is plain.
func documentKey(requestID uuid.UUID, name, filename string) string {
	return "onboarding/" + requestID.String() + "/" + name + safeExtension(filename)
}

func safeExtension(filename string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(filename, "\\", "/")))
	if len(ext) < 2 || len(ext) > maxExtensionLength {
		return ""
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
