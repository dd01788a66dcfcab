package service

import (
	"context"
	"fmt"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
	"github.com/kevinzhou/rentflow/internal/domain/workflow"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// ApprovalAuthority decides whether the caller is entitled to review a
// given application, including indirect agent representation of the
// landlord.
type ApprovalAuthority interface {
	Authorize(ctx context.Context, approver *entity.User, property *entity.Property, landlord *entity.User) (workflow.Grant, error)
}

type approvalAuthority struct {
	propertyRepo port.PropertyRepository
	profileRepo  port.ProfileRepository
	logger       Logger
}

// NewApprovalAuthority creates a new ApprovalAuthority
func NewApprovalAuthority(propertyRepo port.PropertyRepository, profileRepo port.ProfileRepository, logger Logger) ApprovalAuthority {
	return &approvalAuthority{
		propertyRepo: propertyRepo,
		profileRepo:  profileRepo,
		logger:       logger,
	}
}

// Authorize resolves the approver's grant over the property. When the
// approver turns out to be the landlord's represented agent but the
// property has no listing agent yet, the property is bound to the approver
// so later lease provisioning captures the correct listing agent.
func (a *approvalAuthority) Authorize(ctx context.Context, approver *entity.User, property *entity.Property, landlord *entity.User) (workflow.Grant, error) {
	grant := workflow.Grant{
		IsLandlord: property.LandlordID == approver.ID,
	}

	switch {
	case property.AgentID == approver.ID && property.AgentID != "":
		grant.IsAgent = true
	case approver.Role == entity.RoleAgent:
		if representingAgentID(ctx, landlord, a.profileRepo) == approver.ID {
			grant.IsAgent = true
			if !property.HasAgent() {
				a.bindAgent(ctx, property, approver.ID)
			}
		}
	}

	if !grant.Authorized() {
		return workflow.Grant{}, fmt.Errorf("%w: user %s on property %s", ErrNotAuthorized, approver.ID, property.ID)
	}

	return grant, nil
}

// bindAgent performs the one-time self-healing write that records an
// implicitly represented agent on the property. Failure leaves the
// authorization outcome intact.
func (a *approvalAuthority) bindAgent(ctx context.Context, property *entity.Property, agentID string) {
	if err := a.propertyRepo.BindAgent(ctx, property.ID, agentID); err != nil {
		a.logger.Warn("Failed to bind represented agent to property",
			"property_id", property.ID, "agent_id", agentID, "error", err)
		return
	}

	property.AgentID = agentID
	a.logger.Info("Bound represented agent to property",
		"property_id", property.ID, "agent_id", agentID)
}
