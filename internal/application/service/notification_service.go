package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// NotificationService composes and persists notification records for the
// approval workflow's counterparties and hands them to the delivery port.
// Every operation is best-effort: errors are returned for logging but must
// never abort or compensate the workflow.
type NotificationService interface {
	NotifyAgentApproved(ctx context.Context, landlordID string, app *entity.Application, property *entity.Property) error
	NotifyFinalApproved(ctx context.Context, tenant *entity.User, app *entity.Application, property *entity.Property, paymentURL string) error
	NotifyRejected(ctx context.Context, tenant *entity.User, app *entity.Application, property *entity.Property) error
}

type notificationService struct {
	notificationRepo port.NotificationRepository
	sender           port.NotificationSender
	logger           Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo port.NotificationRepository, sender port.NotificationSender, logger Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		sender:           sender,
		logger:           logger,
	}
}

// NotifyAgentApproved informs the landlord that the agent has pre-approved
// and the application now awaits their final approval.
func (s *notificationService) NotifyAgentApproved(ctx context.Context, landlordID string, app *entity.Application, property *entity.Property) error {
	return s.dispatch(ctx, &port.NotificationDelivery{
		UserID:  landlordID,
		Type:    entity.NotificationTypeAgentApproved,
		Title:   "Application pre-approved by your agent",
		Message: fmt.Sprintf("The rental application for %q has been approved by your agent and awaits your final approval.", property.Title),
		Link:    fmt.Sprintf("/applications/%s", app.ID),
		Metadata: map[string]string{
			"application_id": app.ID,
			"property_id":    property.ID,
		},
	})
}

// NotifyFinalApproved informs the tenant of final approval, including the
// escrow payment link.
func (s *notificationService) NotifyFinalApproved(ctx context.Context, tenant *entity.User, app *entity.Application, property *entity.Property, paymentURL string) error {
	return s.dispatch(ctx, &port.NotificationDelivery{
		UserID:  tenant.ID,
		Type:    entity.NotificationTypeApplicationApproved,
		Title:   "Your rental application was approved",
		Message: fmt.Sprintf("Your application for %q was approved. Complete the escrow payment to activate your lease.", property.Title),
		Link:    paymentURL,
		Metadata: map[string]string{
			"application_id": app.ID,
			"property_id":    property.ID,
		},
	})
}

// NotifyRejected informs the tenant that the application was rejected.
func (s *notificationService) NotifyRejected(ctx context.Context, tenant *entity.User, app *entity.Application, property *entity.Property) error {
	return s.dispatch(ctx, &port.NotificationDelivery{
		UserID:  tenant.ID,
		Type:    entity.NotificationTypeApplicationRejected,
		Title:   "Your rental application was not accepted",
		Message: fmt.Sprintf("Your application for %q was not accepted.", property.Title),
		Link:    fmt.Sprintf("/applications/%s", app.ID),
		Metadata: map[string]string{
			"application_id": app.ID,
			"property_id":    property.ID,
		},
	})
}

// dispatch persists the notification record and invokes delivery. The
// record survives even when delivery fails so the user still sees it
// in-app.
func (s *notificationService) dispatch(ctx context.Context, delivery *port.NotificationDelivery) error {
	record := &entity.Notification{
		ID:       uuid.NewString(),
		UserID:   delivery.UserID,
		Type:     delivery.Type,
		Title:    delivery.Title,
		Message:  delivery.Message,
		Link:     delivery.Link,
		Metadata: marshalMetadata(delivery.Metadata),
		Status:   entity.NotificationStatusPending,
	}

	if err := s.notificationRepo.Create(ctx, record); err != nil {
		s.logger.Error("Failed to persist notification", "user_id", delivery.UserID, "type", delivery.Type, "error", err)
		return fmt.Errorf("persist notification: %w", err)
	}

	if err := s.sender.Send(ctx, delivery); err != nil {
		s.logger.Error("Failed to deliver notification", "user_id", delivery.UserID, "type", delivery.Type, "error", err)
		return fmt.Errorf("deliver notification: %w", err)
	}

	now := time.Now()
	if err := s.notificationRepo.MarkSent(ctx, record.ID, now); err != nil {
		s.logger.Error("Failed to mark notification sent", "notification_id", record.ID, "error", err)
	}

	return nil
}

func marshalMetadata(metadata map[string]string) string {
	if len(metadata) == 0 {
		return ""
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(data)
}
