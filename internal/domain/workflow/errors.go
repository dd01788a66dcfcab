package workflow

import "errors"

var (
	// ErrInvalidTransition is returned when a status transition is not allowed
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned when a status is not a valid application status
	ErrInvalidStatus = errors.New("invalid status")

	// ErrTerminalState is returned when a transition is attempted from a terminal status
	ErrTerminalState = errors.New("application is in a terminal state")

	// ErrAgentReviewRequired is returned when a landlord attempts final
	// approval before the assigned agent has pre-approved
	ErrAgentReviewRequired = errors.New("agent review required before landlord approval")
)
