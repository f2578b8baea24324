package settings

import "context"

// Well-known setting keys. The store is the system of record for provider
// credentials, the alert webhook, and the exhaustion-notification flag.
const (
	KeyEmailAPIKey     = "emaillistverify_api_key"
	KeyPhoneAPIKey     = "numverify_api_key"
	KeyAlertWebhookURL = "alert_webhook_url"

	// KeyCreditsNotified is true only while the email verification
	// provider has been continuously out of credits since the alert was
	// sent; it is reset the moment credits are observed again.
	KeyCreditsNotified = "credits_notification_sent"
)

// Store is the credential/settings provider consumed by the verifiers.
// Missing keys read as zero values rather than errors; a returned error
// means the backing store itself failed.
type Store interface {
	GetString(ctx context.Context, key string) (string, error)
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}
