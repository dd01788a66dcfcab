package entity

import "time"

// Payment represents an escrow payment order covering the first month's
// rent plus the deposit for a newly provisioned lease.
type Payment struct {
	ID           string    `json:"id"`
	LeaseID      string    `json:"lease_id"`
	TenantID     string    `json:"tenant_id"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	EscrowStatus string    `json:"escrow_status"`
	GatewayRef   string    `json:"gateway_ref,omitempty"`
	PaymentURL   string    `json:"payment_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
