package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_AgentApprovalYieldsIntermediateStatus(t *testing.T) {
	next, err := Next(StatusPending, StatusApproved, Grant{IsAgent: true}, true)
	require.NoError(t, err)
	assert.Equal(t, StatusAgentApproved, next)
}

func TestNext_LandlordBlockedBeforeAgentReview(t *testing.T) {
	for _, current := range []Status{StatusPending, StatusUnderReview} {
		_, err := Next(current, StatusApproved, Grant{IsLandlord: true}, true)
		assert.ErrorIs(t, err, ErrAgentReviewRequired, "from %s", current)
	}
}

func TestNext_LandlordApprovesAfterAgent(t *testing.T) {
	next, err := Next(StatusAgentApproved, StatusApproved, Grant{IsLandlord: true}, true)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, next)
	assert.True(t, next.FinalApprovalReached())
}

func TestNext_NoAgentGateWithoutListingAgent(t *testing.T) {
	next, err := Next(StatusPending, StatusApproved, Grant{IsLandlord: true}, false)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, next)
}

func TestNext_TerminalStatesRejectFurtherTransitions(t *testing.T) {
	for _, current := range []Status{StatusRejected, StatusWithdrawn, StatusApproved} {
		_, err := Next(current, StatusApproved, Grant{IsLandlord: true}, false)
		assert.ErrorIs(t, err, ErrTerminalState, "from %s", current)
	}
}

func TestNext_NonApprovalRequestsPassThrough(t *testing.T) {
	tests := []struct {
		requested Status
	}{
		{StatusRejected},
		{StatusWithdrawn},
		{StatusUnderReview},
	}

	for _, tt := range tests {
		next, err := Next(StatusPending, tt.requested, Grant{IsAgent: true}, true)
		require.NoError(t, err)
		assert.Equal(t, tt.requested, next)
	}
}

func TestNext_InvalidRequestedStatus(t *testing.T) {
	_, err := Next(StatusPending, Status("SUSPENDED"), Grant{IsLandlord: true}, false)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNext_UngrantedApproverCannotReachApproval(t *testing.T) {
	_, err := Next(StatusPending, StatusApproved, Grant{}, true)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, StatusApproved.IsTerminal())
	assert.False(t, StatusAgentApproved.IsTerminal())
	assert.True(t, StatusApproved.FinalApprovalReached())
	assert.False(t, StatusAgentApproved.FinalApprovalReached())
	assert.False(t, Status("BOGUS").IsValid())
}
