package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
	"github.com/kevinzhou/rentflow/internal/domain/workflow"
)

// ApprovalRequest carries one approval call: the target application, the
// caller identity resolved out-of-band, and the requested status.
type ApprovalRequest struct {
	ApplicationID   string
	ApproverID      string
	ApproverRole    string
	RequestedStatus workflow.Status
}

// ApprovalService orchestrates the rental-application approval workflow:
// authorize, transition, and on final approval provision a lease plus an
// escrow payment order, compensating on any provisioning failure.
type ApprovalService interface {
	ProcessApproval(ctx context.Context, req *ApprovalRequest) (*entity.ApplicationView, error)
}

type approvalService struct {
	applicationRepo port.ApplicationRepository
	propertyRepo    port.PropertyRepository
	userRepo        port.UserRepository
	authority       ApprovalAuthority
	provisioner     LeaseProvisioner
	escrow          EscrowPaymentCoordinator
	compensator     CompensationManager
	notifier        NotificationService
	analytics       port.AnalyticsSink
	logger          Logger
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(
	applicationRepo port.ApplicationRepository,
	propertyRepo port.PropertyRepository,
	userRepo port.UserRepository,
	authority ApprovalAuthority,
	provisioner LeaseProvisioner,
	escrow EscrowPaymentCoordinator,
	compensator CompensationManager,
	notifier NotificationService,
	analytics port.AnalyticsSink,
	logger Logger,
) ApprovalService {
	return &approvalService{
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		authority:       authority,
		provisioner:     provisioner,
		escrow:          escrow,
		compensator:     compensator,
		notifier:        notifier,
		analytics:       analytics,
		logger:          logger,
	}
}

// ProcessApproval runs one approval call end to end. The status change is
// persisted with an optimistic check against the status read at the start
// of the call, so a concurrent double-submit loses with a conflict instead
// of provisioning twice.
func (s *approvalService) ProcessApproval(ctx context.Context, req *ApprovalRequest) (*entity.ApplicationView, error) {
	if req.ApproverID == "" {
		return nil, ErrNotAuthenticated
	}

	app, err := s.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return nil, fmt.Errorf("%w: application %s", ErrNotFound, req.ApplicationID)
	}

	property, err := s.propertyRepo.GetByID(ctx, app.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("load property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("%w: property %s", ErrNotFound, app.PropertyID)
	}

	landlord, err := s.userRepo.GetByID(ctx, property.LandlordID)
	if err != nil {
		return nil, fmt.Errorf("load landlord: %w", err)
	}
	if landlord == nil {
		return nil, fmt.Errorf("%w: landlord %s", ErrNotFound, property.LandlordID)
	}

	tenant, err := s.userRepo.GetByID(ctx, app.TenantID)
	if err != nil {
		return nil, fmt.Errorf("load tenant: %w", err)
	}
	if tenant == nil {
		return nil, fmt.Errorf("%w: tenant %s", ErrNotFound, app.TenantID)
	}

	approver := &entity.User{ID: req.ApproverID, Role: req.ApproverRole}
	grant, err := s.authority.Authorize(ctx, approver, property, landlord)
	if err != nil {
		return nil, err
	}

	originalStatus := app.Status
	originalReviewedAt := app.ReviewedDate

	next, err := workflow.Next(workflow.Status(app.Status), req.RequestedStatus, grant, property.HasAgent())
	if err != nil {
		return nil, err
	}

	// Price is validated before the status write so InvalidPrice aborts
	// with no mutation at all.
	if next.FinalApprovalReached() && property.Price <= 0 {
		return nil, fmt.Errorf("%w: property %s has price %.2f", ErrInvalidPrice, property.ID, property.Price)
	}

	now := time.Now()
	if err := s.applicationRepo.UpdateStatusFrom(ctx, app.ID, originalStatus, next.String(), &now); err != nil {
		return nil, fmt.Errorf("persist status change: %w", err)
	}
	app.Status = next.String()
	app.ReviewedDate = &now

	s.logger.Info("Application status transitioned",
		"application_id", app.ID,
		"from", originalStatus,
		"to", app.Status,
		"approver_id", req.ApproverID)

	view := &entity.ApplicationView{
		Application: app,
		Property:    property,
		Tenant:      tenant.Public(),
	}

	if !next.FinalApprovalReached() {
		s.afterIntermediateTransition(ctx, next, app, property, landlord, tenant)
		s.track(ctx, "application_status_changed", app, originalStatus)
		return view, nil
	}

	lease, err := s.provisioner.Provision(ctx, app, property, tenant, landlord)
	if err != nil {
		// Only the status write is committed at this point; revert it.
		s.compensator.Compensate(ctx, app.ID, originalStatus, originalReviewedAt, nil)
		app.Status = originalStatus
		app.ReviewedDate = originalReviewedAt
		return nil, err
	}

	order, err := s.escrow.CreateEscrowOrder(ctx, tenant, lease)
	if err != nil {
		s.compensator.Compensate(ctx, app.ID, originalStatus, originalReviewedAt, lease)
		app.Status = originalStatus
		app.ReviewedDate = originalReviewedAt
		return nil, err
	}

	// Point of no return: the financial obligation exists. Everything from
	// here is best-effort.
	s.provisioner.MarkOccupied(ctx, property, tenant)

	if err := s.notifier.NotifyFinalApproved(ctx, tenant, app, property, order.PaymentURL); err != nil {
		s.logger.Warn("Approval notification failed", "application_id", app.ID, "error", err)
	}

	s.track(ctx, "application_approved", app, originalStatus)

	view.PaymentURL = order.PaymentURL
	return view, nil
}

// afterIntermediateTransition handles the notifications of non-provisioning
// outcomes: the landlord learns about an agent pre-approval, the tenant
// about a rejection.
func (s *approvalService) afterIntermediateTransition(ctx context.Context, next workflow.Status, app *entity.Application, property *entity.Property, landlord, tenant *entity.User) {
	var err error
	switch next {
	case workflow.StatusAgentApproved:
		err = s.notifier.NotifyAgentApproved(ctx, landlord.ID, app, property)
	case workflow.StatusRejected:
		err = s.notifier.NotifyRejected(ctx, tenant, app, property)
	}
	if err != nil {
		s.logger.Warn("Transition notification failed", "application_id", app.ID, "status", next.String(), "error", err)
	}
}

func (s *approvalService) track(ctx context.Context, event string, app *entity.Application, from string) {
	if s.analytics == nil {
		return
	}
	s.analytics.Track(ctx, event, map[string]interface{}{
		"application_id": app.ID,
		"property_id":    app.PropertyID,
		"from_status":    from,
		"to_status":      app.Status,
	})
}
