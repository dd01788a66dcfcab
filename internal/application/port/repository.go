package port

import (
	"context"
	"errors"
	"time"

	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// ErrStatusConflict is returned by conditional status writes when the row's
// current status no longer matches the expected value. It is how a losing
// concurrent approval surfaces instead of provisioning twice.
var ErrStatusConflict = errors.New("application status changed concurrently")

// ApplicationRepository defines persistence operations for Application
type ApplicationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Application, error)
	UpdateStatus(ctx context.Context, id, status string, reviewedAt *time.Time) error

	// UpdateStatusFrom updates the status only when the persisted status
	// still equals expectedCurrent, returning ErrStatusConflict otherwise.
	UpdateStatusFrom(ctx context.Context, id, expectedCurrent, status string, reviewedAt *time.Time) error
}

// PropertyRepository defines persistence operations for Property
type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	UpdateStatus(ctx context.Context, id, status string) error
	BindAgent(ctx context.Context, id, agentID string) error
}

// LeaseRepository defines persistence operations for Lease
type LeaseRepository interface {
	Create(ctx context.Context, lease *entity.Lease) error
	GetByID(ctx context.Context, id string) (*entity.Lease, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*entity.Lease, error)
	Delete(ctx context.Context, id string) error
}

// PaymentRepository defines persistence operations for Payment
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByLeaseID(ctx context.Context, leaseID string) (*entity.Payment, error)
	DeleteByLeaseID(ctx context.Context, leaseID string) error
}

// UserRepository defines persistence operations for User
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// ProfileRepository defines persistence operations for Profile
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)

	// UpsertStatus sets the occupancy status, creating the profile if absent.
	UpsertStatus(ctx context.Context, userID, status string) error
}

// NotificationRepository defines persistence operations for Notification
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
}
