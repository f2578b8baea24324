package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amarasa/lead-shield/internal/domain/validation"
)

// VerificationRecord is one audit row for a validation decision.
type VerificationRecord struct {
	ID        uuid.UUID            `json:"id"`
	FieldKind validation.FieldKind `json:"field_kind"`
	Value     string               `json:"value"`
	Valid     bool                 `json:"valid"`
	Message   string               `json:"message,omitempty"`
	CheckedAt time.Time            `json:"checked_at"`
}

// verificationRepository implements the audit log using PostgreSQL
type verificationRepository struct {
	pool *pgxpool.Pool
}

// NewVerificationRepository creates a new verification audit repository
func NewVerificationRepository(pool *pgxpool.Pool) *verificationRepository {
	return &verificationRepository{pool: pool}
}

// Save inserts a verification record
func (r *verificationRepository) Save(ctx context.Context, rec *VerificationRecord) error {
	query := `
		INSERT INTO verification_checks (id, field_kind, value, valid, message, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, string(rec.FieldKind), rec.Value, rec.Valid, rec.Message, rec.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save verification record: %w", err)
	}

	return nil
}

// ListRecent returns the most recent verification records, newest first
func (r *verificationRepository) ListRecent(ctx context.Context, limit int) ([]*VerificationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, field_kind, value, valid, message, checked_at
		FROM verification_checks
		ORDER BY checked_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list verification records: %w", err)
	}
	defer rows.Close()

	var records []*VerificationRecord
	for rows.Next() {
		var rec VerificationRecord
		var kind string
		if err := rows.Scan(&rec.ID, &kind, &rec.Value, &rec.Valid, &rec.Message, &rec.CheckedAt); err != nil {
			return nil, fmt.Errorf("failed to scan verification record: %w", err)
		}
		rec.FieldKind = validation.FieldKind(kind)
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate verification records: %w", err)
	}

	return records, nil
}
