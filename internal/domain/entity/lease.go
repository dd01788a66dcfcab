package entity

import "time"

// Lease represents a provisional tenancy contract created on final approval
type Lease struct {
	ID             string    `json:"id"`
	ApplicationID  string    `json:"application_id"`
	PropertyID     string    `json:"property_id"`
	TenantID       string    `json:"tenant_id"`
	LandlordID     string    `json:"landlord_id"`
	ListingAgentID string    `json:"listing_agent_id,omitempty"`
	TenantAgentID  string    `json:"tenant_agent_id,omitempty"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	MonthlyRent    float64   `json:"monthly_rent"`
	DepositAmount  float64   `json:"deposit_amount"`
	Status         string    `json:"status"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
