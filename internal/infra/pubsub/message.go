// Package pubsub publishes onboarding events to Google Pub/Sub, or straight to
// the worker's push endpoint during local development.
package pubsub

import (
	"encoding/json"

	"checkin/internal/domain/constants"
	"checkin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// outboundMessage is an onboarding event encoded once for either transport.
type outboundMessage struct {
	id         string
	data       []byte
	attributes map[string]string
}

func newOutboundMessage(event *service.OnboardingSubmittedEvent) (*outboundMessage, error) {
	if event == nil || event.OnboardingID == "" {
		return nil, errors.New("onboarding event requires an onboarding id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode onboarding event")
	}

	attributes := map[string]string{
		"event_type":    constants.EventOnboardingSubmitted,
		"onboarding_id": event.OnboardingID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &outboundMessage{
		id:         uuid.NewString(),
		data:       data,
		attributes: attributes,
	}, nil
}
