package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// LeaseProvisioner derives lease terms from the property and application
// and creates the lease record in a pending-payment state.
type LeaseProvisioner interface {
	Provision(ctx context.Context, app *entity.Application, property *entity.Property, tenant, landlord *entity.User) (*entity.Lease, error)

	// MarkOccupied records the property and tenant occupancy side effects.
	// Called only after the escrow order has been committed, so the
	// compensable window never contains these writes. Best-effort.
	MarkOccupied(ctx context.Context, property *entity.Property, tenant *entity.User)
}

type leaseProvisioner struct {
	leaseRepo    port.LeaseRepository
	propertyRepo port.PropertyRepository
	profileRepo  port.ProfileRepository
	txManager    port.TransactionManager
	logger       Logger
}

// NewLeaseProvisioner creates a new LeaseProvisioner
func NewLeaseProvisioner(
	leaseRepo port.LeaseRepository,
	propertyRepo port.PropertyRepository,
	profileRepo port.ProfileRepository,
	txManager port.TransactionManager,
	logger Logger,
) LeaseProvisioner {
	return &leaseProvisioner{
		leaseRepo:    leaseRepo,
		propertyRepo: propertyRepo,
		profileRepo:  profileRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Provision creates the lease for a finally approved application.
// The deposit falls back from the property's deposit to the application's
// deposit hint to one month's rent.
func (p *leaseProvisioner) Provision(ctx context.Context, app *entity.Application, property *entity.Property, tenant, landlord *entity.User) (*entity.Lease, error) {
	if property.Price <= 0 {
		return nil, fmt.Errorf("%w: property %s has price %.2f", ErrInvalidPrice, property.ID, property.Price)
	}

	deposit := property.Deposit
	if deposit <= 0 {
		deposit = app.DepositAmount
	}
	if deposit <= 0 {
		deposit = property.Price
	}

	listingAgentID := property.AgentID
	if listingAgentID == "" {
		listingAgentID = representingAgentID(ctx, landlord, p.profileRepo)
	}

	now := time.Now()
	lease := &entity.Lease{
		ID:             uuid.NewString(),
		ApplicationID:  app.ID,
		PropertyID:     property.ID,
		TenantID:       tenant.ID,
		LandlordID:     property.LandlordID,
		ListingAgentID: listingAgentID,
		TenantAgentID:  representingAgentID(ctx, tenant, p.profileRepo),
		StartDate:      now,
		EndDate:        now.AddDate(1, 0, 0),
		MonthlyRent:    property.Price,
		DepositAmount:  deposit,
		Status:         entity.LeaseStatusPendingPayment,
		IsActive:       false,
	}

	if err := p.leaseRepo.Create(ctx, lease); err != nil {
		p.logger.Error("Failed to create lease", "application_id", app.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrLeaseCreationFailed, err)
	}

	p.logger.Info("Lease provisioned",
		"lease_id", lease.ID,
		"application_id", app.ID,
		"monthly_rent", lease.MonthlyRent,
		"deposit", lease.DepositAmount)

	return lease, nil
}

// MarkOccupied flips the property and the tenant's profile to OCCUPIED in
// one transaction, so the listing never shows occupied while the tenant's
// profile still reads as searching. Failures are logged, not propagated:
// neither write is required for the correctness of the financial obligation.
func (p *leaseProvisioner) MarkOccupied(ctx context.Context, property *entity.Property, tenant *entity.User) {
	err := p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := p.propertyRepo.UpdateStatus(txCtx, property.ID, entity.PropertyStatusOccupied); err != nil {
			return fmt.Errorf("mark property occupied: %w", err)
		}
		if err := p.profileRepo.UpsertStatus(txCtx, tenant.ID, entity.ProfileStatusOccupied); err != nil {
			return fmt.Errorf("mark tenant profile occupied: %w", err)
		}
		return nil
	})
	if err != nil {
		p.logger.Error("Failed to record occupancy",
			"property_id", property.ID,
			"tenant_id", tenant.ID,
			"error", err)
		return
	}

	property.Status = entity.PropertyStatusOccupied
}
