package workflow

// Status represents an application status in the approval lifecycle
type Status string

const (
	StatusPending       Status = "PENDING"
	StatusUnderReview   Status = "UNDER_REVIEW"
	StatusAgentApproved Status = "AGENT_APPROVED"
	StatusApproved      Status = "APPROVED"
	StatusRejected      Status = "REJECTED"
	StatusWithdrawn     Status = "WITHDRAWN"
)

var validStatuses = map[Status]bool{
	StatusPending:       true,
	StatusUnderReview:   true,
	StatusAgentApproved: true,
	StatusApproved:      true,
	StatusRejected:      true,
	StatusWithdrawn:     true,
}

var terminalStatuses = map[Status]bool{
	StatusApproved:  true,
	StatusRejected:  true,
	StatusWithdrawn: true,
}

// IsTerminal returns true if the status is terminal (no further transitions allowed)
func (s Status) IsTerminal() bool {
	return terminalStatuses[s]
}

// IsValid returns true if the status is a valid application status
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// FinalApprovalReached reports whether the status triggers lease and escrow
// provisioning. AGENT_APPROVED is deliberately excluded: it is a durable
// intermediate state that gates the landlord's final approval.
func (s Status) FinalApprovalReached() bool {
	return s == StatusApproved
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}
