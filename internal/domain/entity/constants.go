package entity

// Role constants for User
const (
	RoleTenant   = "TENANT"
	RoleLandlord = "LANDLORD"
	RoleAgent    = "AGENT"
	RoleAdmin    = "ADMIN"
)

// Status constants for Property
const (
	PropertyStatusAvailable   = "AVAILABLE"
	PropertyStatusOccupied    = "OCCUPIED"
	PropertyStatusMaintenance = "MAINTENANCE"
	PropertyStatusDelisted    = "DELISTED"
)

// Status constants for Lease
const (
	LeaseStatusPendingPayment = "PENDING_PAYMENT"
	LeaseStatusActive         = "ACTIVE"
	LeaseStatusTerminated     = "TERMINATED"
)

// Status constants for Payment
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

// Escrow status constants for Payment
const (
	EscrowStatusHeld     = "HELD_IN_ESCROW"
	EscrowStatusReleased = "RELEASED"
)

// Payment type constants
const (
	PaymentTypeRent    = "RENT"
	PaymentTypeDeposit = "DEPOSIT"
)

// Occupancy status constants for user profiles
const (
	ProfileStatusSearching = "SEARCHING"
	ProfileStatusOccupied  = "OCCUPIED"
)

// Notification type constants
const (
	NotificationTypeAgentApproved       = "APPLICATION_AGENT_APPROVED"
	NotificationTypeApplicationApproved = "APPLICATION_APPROVED"
	NotificationTypeApplicationRejected = "APPLICATION_REJECTED"
)

// Notification status constants
const (
	NotificationStatusPending = "PENDING"
	NotificationStatusSent    = "SENT"
	NotificationStatusFailed  = "FAILED"
)
