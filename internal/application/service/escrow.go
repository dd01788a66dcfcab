package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// EscrowOrder is the outcome of a successful escrow order creation.
type EscrowOrder struct {
	PaymentURL string
	PaymentID  string
	Payment    *entity.Payment
}

// EscrowPaymentCoordinator creates the tenant's first escrow payment order
// tied to a freshly provisioned lease.
type EscrowPaymentCoordinator interface {
	CreateEscrowOrder(ctx context.Context, tenant *entity.User, lease *entity.Lease) (*EscrowOrder, error)
}

type escrowCoordinator struct {
	gateway     port.PaymentGateway
	paymentRepo port.PaymentRepository
	logger      Logger
}

// NewEscrowPaymentCoordinator creates a new EscrowPaymentCoordinator
func NewEscrowPaymentCoordinator(gateway port.PaymentGateway, paymentRepo port.PaymentRepository, logger Logger) EscrowPaymentCoordinator {
	return &escrowCoordinator{
		gateway:     gateway,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// CreateEscrowOrder delegates to the payment gateway and persists the
// resulting payment record. A hard call failure and a success:false
// response are the same failure class: the caller must compensate.
func (c *escrowCoordinator) CreateEscrowOrder(ctx context.Context, tenant *entity.User, lease *entity.Lease) (*EscrowOrder, error) {
	result, err := c.gateway.CreateEscrowPayment(ctx, &port.EscrowPaymentRequest{
		TenantID:      tenant.ID,
		LeaseID:       lease.ID,
		MonthlyRent:   lease.MonthlyRent,
		DepositAmount: lease.DepositAmount,
		Description:   fmt.Sprintf("First month rent and deposit for lease %s", lease.ID),
	})
	if err != nil {
		c.logger.Error("Escrow gateway call failed", "lease_id", lease.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvisioningFailed, err)
	}
	if !result.Success {
		c.logger.Error("Escrow gateway reported failure", "lease_id", lease.ID, "gateway_error", result.Error)
		return nil, fmt.Errorf("%w: gateway: %s", ErrPaymentProvisioningFailed, result.Error)
	}

	paymentID := extractPaymentID(result)

	payment := &entity.Payment{
		ID:           uuid.NewString(),
		LeaseID:      lease.ID,
		TenantID:     tenant.ID,
		Type:         entity.PaymentTypeRent,
		Amount:       lease.MonthlyRent + lease.DepositAmount,
		Status:       entity.PaymentStatusPending,
		EscrowStatus: entity.EscrowStatusHeld,
		GatewayRef:   paymentID,
		PaymentURL:   result.PaymentURL,
	}

	if err := c.paymentRepo.Create(ctx, payment); err != nil {
		c.logger.Error("Failed to persist payment record", "lease_id", lease.ID, "error", err)
		return nil, fmt.Errorf("%w: persist payment: %v", ErrPaymentProvisioningFailed, err)
	}

	c.logger.Info("Escrow order created",
		"lease_id", lease.ID,
		"payment_id", paymentID,
		"amount", payment.Amount)

	return &EscrowOrder{
		PaymentURL: result.PaymentURL,
		PaymentID:  paymentID,
		Payment:    payment,
	}, nil
}

// extractPaymentID pulls a usable order reference out of the gateway
// response: the explicit id, then the transaction-intent id, then whatever
// identifier can be parsed out of the redirect URL.
func extractPaymentID(result *port.EscrowPaymentResult) string {
	if result.PaymentID != "" {
		return result.PaymentID
	}
	if result.PaymentIntentID != "" {
		return result.PaymentIntentID
	}
	return paymentIDFromURL(result.PaymentURL)
}

func paymentIDFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	query := u.Query()
	for _, key := range []string{"payment_id", "order_id"} {
		if id := query.Get(key); id != "" {
			return id
		}
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) > 0 && segments[len(segments)-1] != "" {
		return segments[len(segments)-1]
	}
	return ""
}
