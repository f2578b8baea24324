package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amarasa/lead-shield/internal/domain/errors"
	"github.com/amarasa/lead-shield/internal/domain/validation"
	"github.com/amarasa/lead-shield/internal/infrastructure/repository"
	"github.com/amarasa/lead-shield/internal/infrastructure/settings"
	"github.com/amarasa/lead-shield/internal/metrics"
	"github.com/amarasa/lead-shield/internal/service/notification"
	"github.com/amarasa/lead-shield/internal/service/validation/providers"
)

// Ensure service implements the interface
var _ Service = (*service)(nil)

// verifierFunc handles one field kind and produces the final verdict.
type verifierFunc func(ctx context.Context, req validation.Request) validation.Verdict

// service implements the validation orchestrator. It dispatches each field
// to the verifier registered for its kind and converts every failure mode
// into a verdict; nothing escapes as an error or panic.
type service struct {
	logger   *zap.Logger
	config   *Config
	settings settings.Store

	emailClient providers.EmailVerificationClient
	phoneClient providers.PhoneVerificationClient
	notifier    notification.Notifier

	// Optional audit log
	resultRepo ResultRepository

	handlers map[validation.FieldKind]verifierFunc

	// Accept set lowered once at construction
	acceptStatuses map[string]struct{}
}

// NewService creates the validation orchestrator
func NewService(
	logger *zap.Logger,
	config *Config,
	store settings.Store,
	emailClient providers.EmailVerificationClient,
	phoneClient providers.PhoneVerificationClient,
	notifier notification.Notifier,
	resultRepo ResultRepository,
) (Service, error) {
	if logger == nil {
		return nil, errors.NewValidationError("INVALID_LOGGER", "logger cannot be nil")
	}
	if config == nil {
		return nil, errors.NewValidationError("INVALID_CONFIG", "config cannot be nil")
	}
	if store == nil {
		return nil, errors.NewValidationError("INVALID_SETTINGS", "settings store cannot be nil")
	}
	if emailClient == nil {
		return nil, errors.NewValidationError("INVALID_EMAIL_CLIENT", "email verification client cannot be nil")
	}
	if phoneClient == nil {
		return nil, errors.NewValidationError("INVALID_PHONE_CLIENT", "phone verification client cannot be nil")
	}
	if notifier == nil {
		return nil, errors.NewValidationError("INVALID_NOTIFIER", "notifier cannot be nil")
	}
	if len(config.AcceptStatuses) == 0 {
		return nil, errors.NewValidationError("INVALID_ACCEPT_SET", "accept status set cannot be empty")
	}

	accepted := make(map[string]struct{}, len(config.AcceptStatuses))
	for _, status := range config.AcceptStatuses {
		accepted[strings.ToLower(status)] = struct{}{}
	}

	svc := &service{
		logger:         logger,
		config:         config,
		settings:       store,
		emailClient:    emailClient,
		phoneClient:    phoneClient,
		notifier:       notifier,
		resultRepo:     resultRepo,
		acceptStatuses: accepted,
	}

	// Field kinds without a registered verifier pass through untouched.
	svc.handlers = map[validation.FieldKind]verifierFunc{
		validation.FieldKindEmail: svc.verifyEmail,
		validation.FieldKindPhone: svc.verifyPhone,
	}

	return svc, nil
}

// Validate dispatches a field to its verifier and returns the verdict
func (s *service) Validate(ctx context.Context, req validation.Request) (verdict validation.Verdict) {
	start := time.Now()

	handler, ok := s.handlers[req.FieldKind]
	if !ok {
		metrics.ValidationChecks.WithLabelValues(string(req.FieldKind), outcomePassThrough).Inc()
		return validation.Pass()
	}

	// A defect in a verifier must not take down the submission pipeline;
	// it degrades to a conservative reject.
	defer func() {
		if r := recover(); r != nil {
			err := errors.NewInternalError("VERIFIER_PANIC",
				fmt.Sprintf("verifier panicked: %v", r))
			s.logger.Error("verifier panicked",
				zap.String("request_id", req.ID.String()),
				zap.String("field_kind", string(req.FieldKind)),
				zap.Error(err))
			verdict = validation.Reject(msgUnexpectedError)
			s.finish(ctx, req, verdict, start)
		}
	}()

	verdict = handler(ctx, req)
	s.finish(ctx, req, verdict, start)
	return verdict
}

// finish records metrics and the optional audit row for a decision
func (s *service) finish(ctx context.Context, req validation.Request, verdict validation.Verdict, start time.Time) {
	outcome := outcomeReject
	if verdict.IsValid {
		outcome = outcomePass
	}
	metrics.ValidationChecks.WithLabelValues(string(req.FieldKind), outcome).Inc()
	metrics.ValidationDuration.WithLabelValues(string(req.FieldKind)).Observe(time.Since(start).Seconds())

	if s.resultRepo == nil {
		return
	}

	rec := &repository.VerificationRecord{
		ID:        uuid.New(),
		FieldKind: req.FieldKind,
		Value:     req.RawValue,
		Valid:     verdict.IsValid,
		Message:   verdict.Message,
		CheckedAt: time.Now().UTC(),
	}
	if err := s.resultRepo.Save(ctx, rec); err != nil {
		s.logger.Warn("failed to save verification record",
			zap.String("request_id", req.ID.String()),
			zap.Error(err))
	}
}
