package workflow

import "fmt"

// Grant describes the approver's relationship to the property, as resolved
// by the approval authority.
type Grant struct {
	IsLandlord bool
	IsAgent    bool
}

// Authorized returns true if the grant carries any approval capability.
func (g Grant) Authorized() bool {
	return g.IsLandlord || g.IsAgent
}

// Next maps a requested status change plus the approver's grant onto the
// legal next status.
//
// Approval of a property with an assigned agent is two-step: the agent moves
// the application to AGENT_APPROVED, and only from there may the landlord
// move it to APPROVED. Properties without an agent are approved by the
// landlord directly. REJECTED, WITHDRAWN and UNDER_REVIEW pass through with
// no gating beyond authorization.
func Next(current, requested Status, grant Grant, propertyHasAgent bool) (Status, error) {
	if !requested.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, requested)
	}
	if current.IsTerminal() {
		return "", fmt.Errorf("%w: cannot move %s application to %s", ErrTerminalState, current, requested)
	}

	if requested != StatusApproved {
		return requested, nil
	}

	if !propertyHasAgent {
		return StatusApproved, nil
	}

	if grant.IsAgent {
		return StatusAgentApproved, nil
	}
	if grant.IsLandlord {
		if current != StatusAgentApproved {
			return "", fmt.Errorf("%w: application is %s", ErrAgentReviewRequired, current)
		}
		return StatusApproved, nil
	}

	return "", fmt.Errorf("%w: approver holds no grant for final approval", ErrInvalidTransition)
}
