package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// UserRepository implements port.UserRepository
type UserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, role, name, email, status, represented_by_id,
			created_at, updated_at
		FROM users
		WHERE id = ?
	`

	var user entity.User
	var representedByID sql.NullString

	err := getExecutor(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Role,
		&user.Name,
		&user.Email,
		&user.Status,
		&representedByID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get user", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.RepresentedByID = representedByID.String

	return &user, nil
}

// Verify interface compliance
var _ port.UserRepository = (*UserRepository)(nil)
