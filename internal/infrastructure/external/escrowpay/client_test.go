package escrowpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
)

func TestCreateEscrowPayment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/escrow/orders", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "lease-1", req.LeaseID)
		assert.Equal(t, 1500.0, req.RentAmount)

		json.NewEncoder(w).Encode(createOrderResponse{
			Success:    true,
			PaymentID:  "pay_42",
			PaymentURL: "https://pay.example.com/pay_42",
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"}, zap.NewNop())

	result, err := client.CreateEscrowPayment(context.Background(), &port.EscrowPaymentRequest{
		TenantID:      "tenant-1",
		LeaseID:       "lease-1",
		MonthlyRent:   1500,
		DepositAmount: 2000,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "pay_42", result.PaymentID)
	assert.Equal(t, "https://pay.example.com/pay_42", result.PaymentURL)
}

func TestCreateEscrowPayment_GatewayFailureBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(createOrderResponse{Success: false, Error: "insufficient KYC"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, zap.NewNop())

	result, err := client.CreateEscrowPayment(context.Background(), &port.EscrowPaymentRequest{LeaseID: "lease-1"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "insufficient KYC", result.Error)
}

func TestCreateEscrowPayment_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, zap.NewNop())

	_, err := client.CreateEscrowPayment(context.Background(), &port.EscrowPaymentRequest{LeaseID: "lease-1"})
	assert.Error(t, err)
}

func TestCreateEscrowPayment_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond}, zap.NewNop())

	_, err := client.CreateEscrowPayment(context.Background(), &port.EscrowPaymentRequest{LeaseID: "lease-1"})
	assert.Error(t, err)
}
