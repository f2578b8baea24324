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
)

// verifyPhone classifies a phone field value through the lookup provider.
// A successful lookup also derives the line type into the form's hidden
// "line_type" field when one exists.
func (s *service) verifyPhone(ctx context.Context, req validation.Request) validation.Verdict {
	apiKey, err := s.settings.GetString(ctx, settings.KeyPhoneAPIKey)
	if err != nil {
		s.logger.Error("failed to read phone API key", zap.Error(err))
		return validation.Reject(msgPhoneUnavailable)
	}

	// Missing credentials are a configuration fault, not a rejection of
	// the number itself; no external call is made.
	if apiKey == "" {
		cfgErr := errors.NewConfigurationError("PHONE_API_KEY_MISSING",
			"phone verification API key is not configured")
		s.logger.Warn("phone verification unavailable",
			zap.String("request_id", req.ID.String()),
			zap.Error(cfgErr))
		return validation.Reject(msgPhoneUnavailable)
	}

	phone, err := values.NewPhoneNumber(req.RawValue)
	if err != nil {
		return validation.Reject(msgPhoneInvalid)
	}

	result, err := s.phoneClient.ValidateNumber(ctx, apiKey, phone.Lookup(s.config.CountryPrefix))
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeTransport) {
			s.logger.Warn("phone verification call failed",
				zap.String("request_id", req.ID.String()),
				zap.Error(err))
		} else {
			s.logger.Error("phone verification call failed",
				zap.String("request_id", req.ID.String()),
				zap.Error(err))
		}
		return validation.Reject(msgPhoneRetryLater)
	}

	if !result.Valid {
		if result.ErrorInfo != "" {
			return validation.Reject(fmt.Sprintf("Invalid phone number: %s", result.ErrorInfo))
		}
		return validation.Reject(msgPhoneInvalid)
	}

	// An undetermined line type is a hard rejection, not a soft pass.
	lineType := strings.TrimSpace(result.LineType)
	if lineType == "" {
		return validation.Reject(msgPhoneNoLineType)
	}

	verdict := validation.Pass()
	if field, ok := req.HiddenField(lineTypeFieldLabel); ok {
		verdict = verdict.WithSideEffect(field.ID, lineType)
	}

	s.logger.Debug("phone accepted",
		zap.String("request_id", req.ID.String()),
		zap.String("line_type", lineType))
	return verdict
}
