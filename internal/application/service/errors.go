package service

import "errors"

// Workflow error taxonomy. Authorization and validation errors abort before
// any write; provisioning errors abort after compensation has run.
var (
	// ErrNotAuthenticated is returned when no caller identity was supplied
	ErrNotAuthenticated = errors.New("caller identity missing")

	// ErrNotFound is returned when the application or a referenced record is missing
	ErrNotFound = errors.New("record not found")

	// ErrNotAuthorized is returned when the caller is neither the landlord
	// nor a direct or represented agent of the property
	ErrNotAuthorized = errors.New("caller is not authorized to review this application")

	// ErrInvalidPrice is returned when the property price is non-positive
	// at provisioning time
	ErrInvalidPrice = errors.New("property price must be positive")

	// ErrLeaseCreationFailed is returned when storage rejects the lease write
	ErrLeaseCreationFailed = errors.New("lease creation failed")

	// ErrPaymentProvisioningFailed is returned when the escrow gateway call
	// fails or reports failure; full compensation runs before it surfaces
	ErrPaymentProvisioningFailed = errors.New("escrow payment provisioning failed")
)
