package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// LeaseRepository implements port.LeaseRepository
type LeaseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewLeaseRepository creates a new lease repository
func NewLeaseRepository(db *sql.DB, logger *zap.Logger) port.LeaseRepository {
	return &LeaseRepository{
		db:     db,
		logger: logger,
	}
}

const leaseColumns = `
	id, application_id, property_id, tenant_id, landlord_id,
	listing_agent_id, tenant_agent_id, start_date, end_date,
	monthly_rent, deposit_amount, status, is_active, created_at, updated_at
`

// Create creates a new lease record
func (r *LeaseRepository) Create(ctx context.Context, lease *entity.Lease) error {
	query := `
		INSERT INTO leases (
			id, application_id, property_id, tenant_id, landlord_id,
			listing_agent_id, tenant_agent_id, start_date, end_date,
			monthly_rent, deposit_amount, status, is_active
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query,
		lease.ID,
		lease.ApplicationID,
		lease.PropertyID,
		lease.TenantID,
		lease.LandlordID,
		lease.ListingAgentID,
		lease.TenantAgentID,
		lease.StartDate,
		lease.EndDate,
		lease.MonthlyRent,
		lease.DepositAmount,
		lease.Status,
		lease.IsActive,
	)
	if err != nil {
		r.logger.Error("Failed to create lease", zap.String("id", lease.ID), zap.Error(err))
		return fmt.Errorf("create lease: %w", err)
	}
	return nil
}

// GetByID retrieves a lease by ID
func (r *LeaseRepository) GetByID(ctx context.Context, id string) (*entity.Lease, error) {
	query := `SELECT` + leaseColumns + `FROM leases WHERE id = ?`
	return r.scanOne(ctx, query, id)
}

// GetByApplicationID retrieves the lease provisioned for an application
func (r *LeaseRepository) GetByApplicationID(ctx context.Context, applicationID string) (*entity.Lease, error) {
	query := `SELECT` + leaseColumns + `FROM leases WHERE application_id = ?`
	return r.scanOne(ctx, query, applicationID)
}

// Delete removes a lease record. Used by compensation.
func (r *LeaseRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM leases WHERE id = ?`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete lease", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete lease: %w", err)
	}
	return nil
}

func (r *LeaseRepository) scanOne(ctx context.Context, query string, arg interface{}) (*entity.Lease, error) {
	var lease entity.Lease
	var listingAgentID, tenantAgentID sql.NullString

	err := getExecutor(ctx, r.db).QueryRowContext(ctx, query, arg).Scan(
		&lease.ID,
		&lease.ApplicationID,
		&lease.PropertyID,
		&lease.TenantID,
		&lease.LandlordID,
		&listingAgentID,
		&tenantAgentID,
		&lease.StartDate,
		&lease.EndDate,
		&lease.MonthlyRent,
		&lease.DepositAmount,
		&lease.Status,
		&lease.IsActive,
		&lease.CreatedAt,
		&lease.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get lease", zap.Any("arg", arg), zap.Error(err))
		return nil, fmt.Errorf("get lease: %w", err)
	}

	lease.ListingAgentID = listingAgentID.String
	lease.TenantAgentID = tenantAgentID.String

	return &lease, nil
}

// Verify interface compliance
var _ port.LeaseRepository = (*LeaseRepository)(nil)
