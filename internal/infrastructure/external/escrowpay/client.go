package escrowpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
)

// Config holds escrow gateway client configuration
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the external escrow payment gateway.
// A call timeout is reported as a failed result, never as an ambiguous
// half-created order: the caller compensates on any error.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new escrow gateway client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// createOrderRequest represents the request body for the escrow order API
type createOrderRequest struct {
	TenantID      string  `json:"tenant_id"`
	LeaseID       string  `json:"lease_id"`
	RentAmount    float64 `json:"rent_amount"`
	DepositAmount float64 `json:"deposit_amount"`
	Method        string  `json:"method,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// createOrderResponse represents the gateway's response
type createOrderResponse struct {
	Success         bool   `json:"success"`
	PaymentURL      string `json:"payment_url,omitempty"`
	PaymentID       string `json:"payment_id,omitempty"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	Error           string `json:"error,omitempty"`
}

// CreateEscrowPayment creates an escrow order covering the first month's
// rent plus the deposit. Uses POST {base}/v1/escrow/orders.
func (c *Client) CreateEscrowPayment(ctx context.Context, req *port.EscrowPaymentRequest) (*port.EscrowPaymentResult, error) {
	payload := createOrderRequest{
		TenantID:      req.TenantID,
		LeaseID:       req.LeaseID,
		RentAmount:    req.MonthlyRent,
		DepositAmount: req.DepositAmount,
		Method:        req.Method,
		Description:   req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal escrow request: %w", err)
	}

	url := c.baseURL + "/v1/escrow/orders"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build escrow request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("Creating escrow order",
		zap.String("lease_id", req.LeaseID),
		zap.Float64("rent", req.MonthlyRent),
		zap.Float64("deposit", req.DepositAmount))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("escrow gateway call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read escrow response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Escrow gateway returned non-2xx",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return nil, fmt.Errorf("escrow gateway status %d", resp.StatusCode)
	}

	var orderResp createOrderResponse
	if err := json.Unmarshal(respBody, &orderResp); err != nil {
		return nil, fmt.Errorf("decode escrow response: %w", err)
	}

	return &port.EscrowPaymentResult{
		Success:         orderResp.Success,
		PaymentURL:      orderResp.PaymentURL,
		PaymentID:       orderResp.PaymentID,
		PaymentIntentID: orderResp.PaymentIntentID,
		Error:           orderResp.Error,
	}, nil
}

// Verify interface compliance
var _ port.PaymentGateway = (*Client)(nil)
