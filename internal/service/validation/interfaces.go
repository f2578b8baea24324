package validation

import (
	"context"

	"github.com/amarasa/lead-shield/internal/domain/validation"
	"github.com/amarasa/lead-shield/internal/infrastructure/repository"
)

// Service is the validation orchestrator invoked once per form field.
// It never returns an error: every failure mode resolves to a verdict.
type Service interface {
	Validate(ctx context.Context, req validation.Request) validation.Verdict
}

// ResultRepository persists verification decisions for auditing. The
// repository is optional; a nil repository disables persistence.
type ResultRepository interface {
	Save(ctx context.Context, rec *repository.VerificationRecord) error
	ListRecent(ctx context.Context, limit int) ([]*repository.VerificationRecord, error)
}
