package entity

import "time"

// Property represents the listing being applied for
type Property struct {
	ID         string    `json:"id"`
	LandlordID string    `json:"landlord_id"`
	AgentID    string    `json:"agent_id,omitempty"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	Deposit    float64   `json:"deposit,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasAgent reports whether a listing agent is assigned to the property.
func (p *Property) HasAgent() bool {
	return p.AgentID != ""
}
