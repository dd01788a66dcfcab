package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// ProfileRepository implements port.ProfileRepository
type ProfileRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sql.DB, logger *zap.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUserID retrieves a profile by user ID
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT user_id, status, represented_by_id, created_at, updated_at
		FROM profiles
		WHERE user_id = ?
	`

	var profile entity.Profile
	var representedByID sql.NullString

	err := getExecutor(ctx, r.db).QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Status,
		&representedByID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get profile", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("get profile: %w", err)
	}

	profile.RepresentedByID = representedByID.String

	return &profile, nil
}

// UpsertStatus sets the occupancy status, creating the profile row when the
// user has none yet.
func (r *ProfileRepository) UpsertStatus(ctx context.Context, userID, status string) error {
	query := `
		INSERT INTO profiles (user_id, status)
		VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			status = excluded.status,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query, userID, status)
	if err != nil {
		r.logger.Error("Failed to upsert profile status",
			zap.String("user_id", userID), zap.String("status", status), zap.Error(err))
		return fmt.Errorf("upsert profile status: %w", err)
	}
	return nil
}

// Verify interface compliance
var _ port.ProfileRepository = (*ProfileRepository)(nil)
