package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Notifier delivers operational alerts to a configured webhook. Delivery is
// best effort: callers log failures and move on, and a lost alert never
// affects a validation verdict.
type Notifier interface {
	Notify(ctx context.Context, webhookURL, text string) error
}

// Config contains configuration for the webhook notifier
type Config struct {
	Timeout time.Duration
}

// webhookNotifier posts Slack-compatible {"text": ...} payloads.
type webhookNotifier struct {
	client *http.Client
	logger *zap.Logger
}

// NewWebhookNotifier creates a webhook-backed Notifier
func NewWebhookNotifier(cfg Config, logger *zap.Logger) Notifier {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &webhookNotifier{
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type webhookPayload struct {
	Text string `json:"text"`
}

// Notify posts the alert text to the webhook URL
func (n *webhookNotifier) Notify(ctx context.Context, webhookURL, text string) error {
	body, err := json.Marshal(webhookPayload{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}

	n.logger.Debug("webhook alert delivered", zap.String("url", webhookURL))
	return nil
}

// ExhaustionMessage formats the one-time quota exhaustion alert for a site.
func ExhaustionMessage(siteDomain string) string {
	return fmt.Sprintf(
		"%s: email verification provider is out of credits; email validation is disabled until the quota resets.",
		siteDomain)
}
