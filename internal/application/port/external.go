package port

import "context"

// EscrowPaymentRequest carries everything the payment gateway needs to
// create the tenant's first escrow order for a lease.
type EscrowPaymentRequest struct {
	TenantID      string
	LeaseID       string
	MonthlyRent   float64
	DepositAmount float64
	Method        string
	Description   string
}

// EscrowPaymentResult represents the gateway's response to an escrow
// order creation call.
type EscrowPaymentResult struct {
	Success         bool
	PaymentURL      string
	PaymentID       string
	PaymentIntentID string
	Error           string
}

// PaymentGateway defines the external payment collaborator
type PaymentGateway interface {
	CreateEscrowPayment(ctx context.Context, req *EscrowPaymentRequest) (*EscrowPaymentResult, error)
}

// NotificationDelivery describes an outbound notification hand-off.
type NotificationDelivery struct {
	UserID   string
	Type     string
	Title    string
	Message  string
	Link     string
	Metadata map[string]string
}

// NotificationSender delivers notifications to users. Fire-and-forget from
// the workflow's point of view: failures are logged, never propagated.
type NotificationSender interface {
	Send(ctx context.Context, delivery *NotificationDelivery) error
}

// AnalyticsSink receives best-effort workflow events.
type AnalyticsSink interface {
	Track(ctx context.Context, event string, props map[string]interface{})
}
