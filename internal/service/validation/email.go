package validation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/amarasa/lead-shield/internal/domain/errors"
	"github.com/amarasa/lead-shield/internal/domain/validation"
	"github.com/amarasa/lead-shield/internal/domain/values"
	"github.com/amarasa/lead-shield/internal/infrastructure/settings"
	"github.com/amarasa/lead-shield/internal/metrics"
	"github.com/amarasa/lead-shield/internal/service/notification"
)

// verifyEmail classifies an email field value through the deliverability
// provider, gated on remaining verification credits. When the quota is
// exhausted the submission is accepted unconditionally (fail-open) and a
// one-time alert is sent; exhaustion must never block legitimate leads.
func (s *service) verifyEmail(ctx context.Context, req validation.Request) validation.Verdict {
	if strings.TrimSpace(req.RawValue) == "" {
		return validation.Reject(msgEmailRequired)
	}

	apiKey, err := s.settings.GetString(ctx, settings.KeyEmailAPIKey)
	if err != nil {
		s.logger.Error("failed to read email API key", zap.Error(err))
		return validation.Reject(msgEmailRetryLater)
	}

	credits := s.checkCredits(ctx, apiKey)
	if credits == 0 {
		return s.failOpenExhausted(ctx, req)
	}

	// Credits recovered; re-arm the exhaustion alert before verifying.
	if notified, err := s.settings.GetBool(ctx, settings.KeyCreditsNotified); err == nil && notified {
		if err := s.settings.SetBool(ctx, settings.KeyCreditsNotified, false); err != nil {
			s.logger.Warn("failed to reset exhaustion flag", zap.Error(err))
		}
	}

	email, err := values.NewEmail(req.RawValue)
	if err != nil {
		return validation.Reject(msgEmailInvalid)
	}

	status, err := s.emailClient.VerifyEmail(ctx, apiKey, email.String())
	if err != nil {
		// Transient transport faults log quieter than provider-side
		// failures; both reject the same way.
		if errors.IsRetryable(err) {
			s.logger.Warn("email verification call failed",
				zap.String("request_id", req.ID.String()),
				zap.Error(err))
		} else {
			s.logger.Error("email verification call failed",
				zap.String("request_id", req.ID.String()),
				zap.Error(err))
		}
		return validation.Reject(msgEmailRetryLater)
	}

	if _, ok := s.acceptStatuses[strings.ToLower(status)]; ok {
		s.logger.Debug("email accepted",
			zap.String("request_id", req.ID.String()),
			zap.String("status", status))
		return validation.Pass()
	}

	return validation.Reject(fmt.Sprintf(
		"The email address could not be verified (status: %s).", status))
}

// checkCredits is the quota gate: it reports remaining provider credits and
// degrades any transport or parse failure to zero. The gate itself fails
// conservative; the caller's fail-open policy decides what the submitter sees.
func (s *service) checkCredits(ctx context.Context, apiKey string) int {
	credits, err := s.emailClient.Credits(ctx, apiKey)
	if err != nil {
		s.logger.Warn("credit check failed, treating quota as exhausted", zap.Error(err))
		return 0
	}
	return credits
}

// failOpenExhausted accepts the submission and sends at most one alert per
// exhaustion episode.
func (s *service) failOpenExhausted(ctx context.Context, req validation.Request) validation.Verdict {
	metrics.QuotaExhausted.Inc()

	notified, err := s.settings.GetBool(ctx, settings.KeyCreditsNotified)
	if err != nil {
		s.logger.Warn("failed to read exhaustion flag", zap.Error(err))
		return validation.Pass()
	}

	if !notified {
		webhookURL, err := s.settings.GetString(ctx, settings.KeyAlertWebhookURL)
		if err != nil {
			s.logger.Warn("failed to read alert webhook URL", zap.Error(err))
			return validation.Pass()
		}

		if webhookURL != "" {
			// Fire and forget: a lost alert never changes the verdict.
			if err := s.notifier.Notify(ctx, webhookURL, notification.ExhaustionMessage(s.config.SiteDomain)); err != nil {
				s.logger.Warn("failed to deliver exhaustion alert", zap.Error(err))
			} else {
				metrics.AlertsSent.Inc()
			}

			if err := s.settings.SetBool(ctx, settings.KeyCreditsNotified, true); err != nil {
				s.logger.Warn("failed to persist exhaustion flag", zap.Error(err))
			}
		}
	}

	s.logger.Info("email verification credits exhausted, accepting submission",
		zap.String("request_id", req.ID.String()))
	return validation.Pass()
}
