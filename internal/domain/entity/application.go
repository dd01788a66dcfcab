package entity

import "time"

// Application represents a tenant's request to rent a property
type Application struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenant_id"`
	PropertyID    string     `json:"property_id"`
	Status        string     `json:"status"`
	AppliedDate   time.Time  `json:"applied_date"`
	ReviewedDate  *time.Time `json:"reviewed_date,omitempty"`
	MonthlyIncome float64    `json:"monthly_income"`
	CreditScore   int        `json:"credit_score"`
	DepositAmount float64    `json:"deposit_amount,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ApplicationView is the joined response shape returned to the caller
// after a successful approval transition.
type ApplicationView struct {
	Application *Application `json:"application"`
	Property    *Property    `json:"property"`
	Tenant      *PublicUser  `json:"tenant"`
	PaymentURL  string       `json:"payment_url,omitempty"`
}
