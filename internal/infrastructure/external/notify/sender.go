package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
)

// Config holds notification delivery configuration
type Config struct {
	WebhookURL string
	Timeout    time.Duration
}

// Sender forwards notification deliveries to the platform's notification
// service over a webhook. When no webhook is configured the sender degrades
// to log-only delivery, which keeps the workflow's best-effort contract
// intact in development setups.
type Sender struct {
	webhookURL string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewSender creates a new notification sender
func NewSender(cfg Config, logger *zap.Logger) *Sender {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &Sender{
		webhookURL: cfg.WebhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send delivers one notification
func (s *Sender) Send(ctx context.Context, delivery *port.NotificationDelivery) error {
	if s.webhookURL == "" {
		s.logger.Info("Notification (log-only delivery)",
			zap.String("user_id", delivery.UserID),
			zap.String("type", delivery.Type),
			zap.String("title", delivery.Title))
		return nil
	}

	body, err := json.Marshal(delivery)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook status %d", resp.StatusCode)
	}
	return nil
}

// Verify interface compliance
var _ port.NotificationSender = (*Sender)(nil)
