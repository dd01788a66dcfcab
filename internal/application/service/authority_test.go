package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

func TestAuthorize_Landlord(t *testing.T) {
	propertyRepo := &mockPropertyRepo{}
	authority := NewApprovalAuthority(propertyRepo, &mockProfileRepo{}, testLogger{})

	property := &entity.Property{ID: "prop-1", LandlordID: "landlord-1"}
	landlord := &entity.User{ID: "landlord-1", Role: entity.RoleLandlord}

	grant, err := authority.Authorize(context.Background(), landlord, property, landlord)
	require.NoError(t, err)
	assert.True(t, grant.IsLandlord)
	assert.False(t, grant.IsAgent)
}

func TestAuthorize_DirectListingAgent(t *testing.T) {
	authority := NewApprovalAuthority(&mockPropertyRepo{}, &mockProfileRepo{}, testLogger{})

	property := &entity.Property{ID: "prop-1", LandlordID: "landlord-1", AgentID: "agent-1"}
	landlord := &entity.User{ID: "landlord-1"}
	agent := &entity.User{ID: "agent-1", Role: entity.RoleAgent}

	grant, err := authority.Authorize(context.Background(), agent, property, landlord)
	require.NoError(t, err)
	assert.True(t, grant.IsAgent)
	assert.False(t, grant.IsLandlord)
}

func TestAuthorize_RepresentedAgentViaDirectField(t *testing.T) {
	propertyRepo := &mockPropertyRepo{}
	authority := NewApprovalAuthority(propertyRepo, &mockProfileRepo{}, testLogger{})

	property := &entity.Property{ID: "prop-1", LandlordID: "landlord-1"}
	landlord := &entity.User{ID: "landlord-1", RepresentedByID: "agent-9"}
	agent := &entity.User{ID: "agent-9", Role: entity.RoleAgent}

	grant, err := authority.Authorize(context.Background(), agent, property, landlord)
	require.NoError(t, err)
	assert.True(t, grant.IsAgent)

	// Self-healing bind: the property had no listing agent.
	assert.Equal(t, "agent-9", propertyRepo.boundAgentID)
	assert.Equal(t, "agent-9", property.AgentID)
}

func TestAuthorize_RepresentedAgentViaProfileFallback(t *testing.T) {
	profileRepo := &mockProfileRepo{
		getByUserIDFunc: func(ctx context.Context, userID string) (*entity.Profile, error) {
			return &entity.Profile{UserID: userID, RepresentedByID: "agent-9"}, nil
		},
	}
	authority := NewApprovalAuthority(&mockPropertyRepo{}, profileRepo, testLogger{})

	property := &entity.Property{ID: "prop-1", LandlordID: "landlord-1"}
	landlord := &entity.User{ID: "landlord-1"}
	agent := &entity.User{ID: "agent-9", Role: entity.RoleAgent}

	grant, err := authority.Authorize(context.Background(), agent, property, landlord)
	require.NoError(t, err)
	assert.True(t, grant.IsAgent)
}

func TestAuthorize_BindFailureDoesNotRevokeGrant(t *testing.T) {
	propertyRepo := &mockPropertyRepo{
		bindAgentFunc: func(ctx context.Context, id, agentID string) error {
			return errors.New("storage down")
		},
	}
	authority := NewApprovalAuthority(propertyRepo, &mockProfileRepo{}, testLogger{})

	property := &entity.Property{ID: "prop-1", LandlordID: "landlord-1"}
	landlord := &entity.User{ID: "landlord-1", RepresentedByID: "agent-9"}
	agent := &entity.User{ID: "agent-9", Role: entity.RoleAgent}

	grant, err := authority.Authorize(context.Background(), agent, property, landlord)
	require.NoError(t, err)
	assert.True(t, grant.IsAgent)
	assert.Empty(t, property.AgentID)
}

func TestAuthorize_StrangerRejected(t *testing.T) {
	authority := NewApprovalAuthority(&mockPropertyRepo{}, &mockProfileRepo{}, testLogger{})

	property := &entity.Property{ID: "prop-1", LandlordID: "landlord-1", AgentID: "agent-1"}
	landlord := &entity.User{ID: "landlord-1"}
	stranger := &entity.User{ID: "user-42", Role: entity.RoleTenant}

	_, err := authority.Authorize(context.Background(), stranger, property, landlord)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestAuthorize_NonAgentRoleGetsNoRepresentationLookup(t *testing.T) {
	profileRepo := &mockProfileRepo{
		getByUserIDFunc: func(ctx context.Context, userID string) (*entity.Profile, error) {
			t.Fatal("profile lookup should not run for non-agent roles")
			return nil, nil
		},
	}
	authority := NewApprovalAuthority(&mockPropertyRepo{}, profileRepo, testLogger{})

	property := &entity.Property{ID: "prop-1", LandlordID: "landlord-1"}
	landlord := &entity.User{ID: "landlord-1"}
	tenant := &entity.User{ID: "tenant-1", Role: entity.RoleTenant}

	_, err := authority.Authorize(context.Background(), tenant, property, landlord)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
