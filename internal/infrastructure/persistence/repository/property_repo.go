package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// PropertyRepository implements port.PropertyRepository
type PropertyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *sql.DB, logger *zap.Logger) port.PropertyRepository {
	return &PropertyRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	query := `
		SELECT id, landlord_id, agent_id, title, price, deposit, status,
			created_at, updated_at
		FROM properties
		WHERE id = ?
	`

	var property entity.Property
	var agentID sql.NullString
	var deposit sql.NullFloat64

	err := getExecutor(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&property.ID,
		&property.LandlordID,
		&agentID,
		&property.Title,
		&property.Price,
		&deposit,
		&property.Status,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get property", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get property: %w", err)
	}

	property.AgentID = agentID.String
	property.Deposit = deposit.Float64

	return &property, nil
}

// UpdateStatus updates the property status
func (r *PropertyRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE properties SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query, status, id)
	if err != nil {
		r.logger.Error("Failed to update property status",
			zap.String("id", id), zap.String("status", status), zap.Error(err))
		return fmt.Errorf("update property status: %w", err)
	}
	return nil
}

// BindAgent records a listing agent on a property that has none. The guard
// in the WHERE clause keeps the write one-time: an already bound agent is
// never overwritten.
func (r *PropertyRepository) BindAgent(ctx context.Context, id, agentID string) error {
	query := `
		UPDATE properties
		SET agent_id = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND (agent_id IS NULL OR agent_id = '')
	`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query, agentID, id)
	if err != nil {
		r.logger.Error("Failed to bind agent to property",
			zap.String("id", id), zap.String("agent_id", agentID), zap.Error(err))
		return fmt.Errorf("bind agent: %w", err)
	}
	return nil
}

// Verify interface compliance
var _ port.PropertyRepository = (*PropertyRepository)(nil)
