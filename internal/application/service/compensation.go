package service

import (
	"context"
	"time"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// CompensationManager undoes the writes of a partially completed approval:
// the application status is reverted to the value captured before the
// transition attempt, and a committed lease is deleted together with its
// payment record. Compensation failures are logged but not retried; the
// original provisioning error is the one surfaced to the caller.
type CompensationManager interface {
	Compensate(ctx context.Context, applicationID, originalStatus string, originalReviewedAt *time.Time, lease *entity.Lease)
}

type compensationManager struct {
	applicationRepo port.ApplicationRepository
	leaseRepo       port.LeaseRepository
	paymentRepo     port.PaymentRepository
	logger          Logger
}

// NewCompensationManager creates a new CompensationManager
func NewCompensationManager(
	applicationRepo port.ApplicationRepository,
	leaseRepo port.LeaseRepository,
	paymentRepo port.PaymentRepository,
	logger Logger,
) CompensationManager {
	return &compensationManager{
		applicationRepo: applicationRepo,
		leaseRepo:       leaseRepo,
		paymentRepo:     paymentRepo,
		logger:          logger,
	}
}

// Compensate walks the committed writes backward: payment record, lease,
// application status.
func (m *compensationManager) Compensate(ctx context.Context, applicationID, originalStatus string, originalReviewedAt *time.Time, lease *entity.Lease) {
	m.logger.Warn("Compensating failed approval",
		"application_id", applicationID,
		"revert_to", originalStatus,
		"lease_committed", lease != nil)

	if lease != nil {
		if err := m.paymentRepo.DeleteByLeaseID(ctx, lease.ID); err != nil {
			m.logger.Error("Compensation: failed to delete payment record", "lease_id", lease.ID, "error", err)
		}
		if err := m.leaseRepo.Delete(ctx, lease.ID); err != nil {
			m.logger.Error("Compensation: failed to delete lease", "lease_id", lease.ID, "error", err)
		}
	}

	if err := m.applicationRepo.UpdateStatus(ctx, applicationID, originalStatus, originalReviewedAt); err != nil {
		m.logger.Error("Compensation: failed to revert application status",
			"application_id", applicationID, "status", originalStatus, "error", err)
	}
}
