package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// NotificationRepository implements port.NotificationRepository
type NotificationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sql.DB, logger *zap.Logger) port.NotificationRepository {
	return &NotificationRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new notification record
func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (
			id, user_id, type, title, message, link, metadata, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query,
		n.ID,
		n.UserID,
		n.Type,
		n.Title,
		n.Message,
		n.Link,
		n.Metadata,
		n.Status,
	)
	if err != nil {
		r.logger.Error("Failed to create notification", zap.String("id", n.ID), zap.Error(err))
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// GetByUserID retrieves the most recent notifications for a user
func (r *NotificationRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, link, metadata, status,
			sent_at, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := getExecutor(ctx, r.db).QueryContext(ctx, query, userID, limit)
	if err != nil {
		r.logger.Error("Failed to list notifications", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var link, metadata sql.NullString
		var sentAt sql.NullTime

		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&link,
			&metadata,
			&n.Status,
			&sentAt,
			&n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		n.Link = link.String
		n.Metadata = metadata.String
		if sentAt.Valid {
			n.SentAt = &sentAt.Time
		}
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

// MarkSent records the delivery timestamp on a notification
func (r *NotificationRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE notifications SET status = ?, sent_at = ? WHERE id = ?`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query, entity.NotificationStatusSent, at, id)
	if err != nil {
		r.logger.Error("Failed to mark notification sent", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("mark notification sent: %w", err)
	}
	return nil
}

// Verify interface compliance
var _ port.NotificationRepository = (*NotificationRepository)(nil)
