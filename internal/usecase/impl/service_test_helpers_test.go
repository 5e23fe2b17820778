package impl

import (
	"io"
	"log/slog"
	"time"

	"checkin/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(reviewers ...string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			SessionTTL: 72 * time.Hour,
		},
		Onboarding: &config.OnboardingConfig{
			ReviewerEmails: reviewers,
		},
	}
}

// fixedNow is the instant returned by mocked clocks.
var fixedNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
