package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// ApplicationRepository implements port.ApplicationRepository
type ApplicationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *sql.DB, logger *zap.Logger) port.ApplicationRepository {
	return &ApplicationRepository{
		db:     db,
		logger: logger,
	}
}

const applicationColumns = `
	id, tenant_id, property_id, status, applied_date, reviewed_date,
	monthly_income, credit_score, deposit_amount, created_at, updated_at
`

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	query := `SELECT` + applicationColumns + `FROM applications WHERE id = ?`

	var app entity.Application
	var reviewedDate sql.NullTime

	err := getExecutor(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&app.ID,
		&app.TenantID,
		&app.PropertyID,
		&app.Status,
		&app.AppliedDate,
		&reviewedDate,
		&app.MonthlyIncome,
		&app.CreditScore,
		&app.DepositAmount,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get application", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get application: %w", err)
	}

	if reviewedDate.Valid {
		app.ReviewedDate = &reviewedDate.Time
	}

	return &app, nil
}

// UpdateStatus updates the application status unconditionally. Used by
// compensation to restore a captured original status.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string, reviewedAt *time.Time) error {
	query := `
		UPDATE applications
		SET status = ?, reviewed_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query, status, nullableTime(reviewedAt), id)
	if err != nil {
		r.logger.Error("Failed to update application status",
			zap.String("id", id), zap.String("status", status), zap.Error(err))
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// UpdateStatusFrom updates the status only when the persisted status still
// equals expectedCurrent. Zero affected rows means another call won the
// race (or the id is gone) and surfaces as ErrStatusConflict.
func (r *ApplicationRepository) UpdateStatusFrom(ctx context.Context, id, expectedCurrent, status string, reviewedAt *time.Time) error {
	query := `
		UPDATE applications
		SET status = ?, reviewed_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = ?
	`

	result, err := getExecutor(ctx, r.db).ExecContext(ctx, query, status, nullableTime(reviewedAt), id, expectedCurrent)
	if err != nil {
		r.logger.Error("Failed to update application status",
			zap.String("id", id), zap.String("status", status), zap.Error(err))
		return fmt.Errorf("update application status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: application %s is no longer %s", port.ErrStatusConflict, id, expectedCurrent)
	}
	return nil
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

// Verify interface compliance
var _ port.ApplicationRepository = (*ApplicationRepository)(nil)
