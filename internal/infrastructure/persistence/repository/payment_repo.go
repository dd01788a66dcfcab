package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// PaymentRepository implements port.PaymentRepository
type PaymentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB, logger *zap.Logger) port.PaymentRepository {
	return &PaymentRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (
			id, lease_id, tenant_id, type, amount, status,
			escrow_status, gateway_ref, payment_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query,
		payment.ID,
		payment.LeaseID,
		payment.TenantID,
		payment.Type,
		payment.Amount,
		payment.Status,
		payment.EscrowStatus,
		payment.GatewayRef,
		payment.PaymentURL,
	)
	if err != nil {
		r.logger.Error("Failed to create payment", zap.String("id", payment.ID), zap.Error(err))
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// GetByLeaseID retrieves the escrow payment order for a lease
func (r *PaymentRepository) GetByLeaseID(ctx context.Context, leaseID string) (*entity.Payment, error) {
	query := `
		SELECT id, lease_id, tenant_id, type, amount, status,
			escrow_status, gateway_ref, payment_url, created_at, updated_at
		FROM payments
		WHERE lease_id = ?
	`

	var payment entity.Payment
	var gatewayRef, paymentURL sql.NullString

	err := getExecutor(ctx, r.db).QueryRowContext(ctx, query, leaseID).Scan(
		&payment.ID,
		&payment.LeaseID,
		&payment.TenantID,
		&payment.Type,
		&payment.Amount,
		&payment.Status,
		&payment.EscrowStatus,
		&gatewayRef,
		&paymentURL,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get payment", zap.String("lease_id", leaseID), zap.Error(err))
		return nil, fmt.Errorf("get payment: %w", err)
	}

	payment.GatewayRef = gatewayRef.String
	payment.PaymentURL = paymentURL.String

	return &payment, nil
}

// DeleteByLeaseID removes the payment records of a lease. Used by
// compensation.
func (r *PaymentRepository) DeleteByLeaseID(ctx context.Context, leaseID string) error {
	query := `DELETE FROM payments WHERE lease_id = ?`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query, leaseID)
	if err != nil {
		r.logger.Error("Failed to delete payments", zap.String("lease_id", leaseID), zap.Error(err))
		return fmt.Errorf("delete payments: %w", err)
	}
	return nil
}

// Verify interface compliance
var _ port.PaymentRepository = (*PaymentRepository)(nil)
