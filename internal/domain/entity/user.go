package entity

import "time"

// User represents a platform account (tenant, landlord, or agent)
type User struct {
	ID              string    `json:"id"`
	Role            string    `json:"role"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	RepresentedByID string    `json:"represented_by_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Profile is the extended per-user record; representation and occupancy
// status live here when they are not set on the account itself.
type Profile struct {
	UserID          string    `json:"user_id"`
	Status          string    `json:"status"`
	RepresentedByID string    `json:"represented_by_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PublicUser is the trimmed projection of a user returned to counterparties.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the trimmed projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
