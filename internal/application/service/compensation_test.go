package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kevinzhou/rentflow/internal/domain/entity"
	"github.com/kevinzhou/rentflow/internal/domain/workflow"
)

func TestCompensate_WithCommittedLease(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	leaseRepo := &mockLeaseRepo{}
	paymentRepo := &mockPaymentRepo{}
	manager := NewCompensationManager(appRepo, leaseRepo, paymentRepo, testLogger{})

	reviewed := time.Now().Add(-time.Hour)
	lease := &entity.Lease{ID: "lease-1", ApplicationID: "app-1"}

	manager.Compensate(context.Background(), "app-1", workflow.StatusAgentApproved.String(), &reviewed, lease)

	assert.Equal(t, []string{"lease-1"}, paymentRepo.deleted)
	assert.Equal(t, []string{"lease-1"}, leaseRepo.deleted)
	assert.Equal(t, []string{workflow.StatusAgentApproved.String()}, appRepo.statusWrites)
}

func TestCompensate_StatusOnlyWhenNoLease(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	leaseRepo := &mockLeaseRepo{}
	paymentRepo := &mockPaymentRepo{}
	manager := NewCompensationManager(appRepo, leaseRepo, paymentRepo, testLogger{})

	manager.Compensate(context.Background(), "app-1", workflow.StatusPending.String(), nil, nil)

	assert.Empty(t, paymentRepo.deleted)
	assert.Empty(t, leaseRepo.deleted)
	assert.Equal(t, []string{workflow.StatusPending.String()}, appRepo.statusWrites)
}

func TestCompensate_LeaseDeleteFailureStillRevertsStatus(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	leaseRepo := &mockLeaseRepo{
		deleteFunc: func(ctx context.Context, id string) error {
			return errors.New("storage down")
		},
	}
	manager := NewCompensationManager(appRepo, leaseRepo, &mockPaymentRepo{}, testLogger{})

	manager.Compensate(context.Background(), "app-1", workflow.StatusPending.String(), nil, &entity.Lease{ID: "lease-1"})

	assert.Equal(t, []string{workflow.StatusPending.String()}, appRepo.statusWrites)
}
