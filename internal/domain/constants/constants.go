// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers
const (
	MailProviderMailerSend = "mailersend"
	MailProviderSMTP       = "smtp"
	MailProviderLog        = "log"
)

// Event types carried in the "event_type" message attribute
const (
	EventOnboardingSubmitted = "onboarding.submitted"
)
