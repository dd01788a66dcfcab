package service

import (
	"context"
	"time"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// testLogger is a no-op Logger for tests
type testLogger struct{}

func (testLogger) Info(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (testLogger) Error(msg string, keysAndValues ...interface{}) {}

type mockApplicationRepo struct {
	getByIDFunc          func(ctx context.Context, id string) (*entity.Application, error)
	updateStatusFunc     func(ctx context.Context, id, status string, reviewedAt *time.Time) error
	updateStatusFromFunc func(ctx context.Context, id, expectedCurrent, status string, reviewedAt *time.Time) error

	statusWrites []string
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id, status string, reviewedAt *time.Time) error {
	m.statusWrites = append(m.statusWrites, status)
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status, reviewedAt)
	}
	return nil
}

func (m *mockApplicationRepo) UpdateStatusFrom(ctx context.Context, id, expectedCurrent, status string, reviewedAt *time.Time) error {
	if m.updateStatusFromFunc != nil {
		if err := m.updateStatusFromFunc(ctx, id, expectedCurrent, status, reviewedAt); err != nil {
			return err
		}
	}
	m.statusWrites = append(m.statusWrites, status)
	return nil
}

type mockPropertyRepo struct {
	getByIDFunc      func(ctx context.Context, id string) (*entity.Property, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
	bindAgentFunc    func(ctx context.Context, id, agentID string) error

	boundAgentID string
	statusWrites []string
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPropertyRepo) UpdateStatus(ctx context.Context, id, status string) error {
	m.statusWrites = append(m.statusWrites, status)
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockPropertyRepo) BindAgent(ctx context.Context, id, agentID string) error {
	if m.bindAgentFunc != nil {
		if err := m.bindAgentFunc(ctx, id, agentID); err != nil {
			return err
		}
	}
	m.boundAgentID = agentID
	return nil
}

type mockLeaseRepo struct {
	createFunc func(ctx context.Context, lease *entity.Lease) error
	deleteFunc func(ctx context.Context, id string) error

	created []*entity.Lease
	deleted []string
}

func (m *mockLeaseRepo) Create(ctx context.Context, lease *entity.Lease) error {
	if m.createFunc != nil {
		if err := m.createFunc(ctx, lease); err != nil {
			return err
		}
	}
	m.created = append(m.created, lease)
	return nil
}

func (m *mockLeaseRepo) GetByID(ctx context.Context, id string) (*entity.Lease, error) {
	for _, l := range m.created {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (m *mockLeaseRepo) GetByApplicationID(ctx context.Context, applicationID string) (*entity.Lease, error) {
	for _, l := range m.created {
		if l.ApplicationID == applicationID {
			return l, nil
		}
	}
	return nil, nil
}

func (m *mockLeaseRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		if err := m.deleteFunc(ctx, id); err != nil {
			return err
		}
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockPaymentRepo struct {
	createFunc func(ctx context.Context, payment *entity.Payment) error

	created []*entity.Payment
	deleted []string
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if m.createFunc != nil {
		if err := m.createFunc(ctx, payment); err != nil {
			return err
		}
	}
	m.created = append(m.created, payment)
	return nil
}

func (m *mockPaymentRepo) GetByLeaseID(ctx context.Context, leaseID string) (*entity.Payment, error) {
	for _, p := range m.created {
		if p.LeaseID == leaseID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPaymentRepo) DeleteByLeaseID(ctx context.Context, leaseID string) error {
	m.deleted = append(m.deleted, leaseID)
	return nil
}

type mockUserRepo struct {
	users map[string]*entity.User
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return m.users[id], nil
}

type mockProfileRepo struct {
	getByUserIDFunc func(ctx context.Context, userID string) (*entity.Profile, error)

	upserted map[string]string
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	if m.getByUserIDFunc != nil {
		return m.getByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) UpsertStatus(ctx context.Context, userID, status string) error {
	if m.upserted == nil {
		m.upserted = make(map[string]string)
	}
	m.upserted[userID] = status
	return nil
}

type mockTxManager struct {
	err error
}

func (m *mockTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type mockNotificationRepo struct {
	createFunc func(ctx context.Context, n *entity.Notification) error

	created []*entity.Notification
	sent    []string
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	if m.createFunc != nil {
		if err := m.createFunc(ctx, n); err != nil {
			return err
		}
	}
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) GetByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range m.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkSent(ctx context.Context, id string, at time.Time) error {
	m.sent = append(m.sent, id)
	return nil
}

type mockGateway struct {
	createFunc func(ctx context.Context, req *port.EscrowPaymentRequest) (*port.EscrowPaymentResult, error)

	calls []*port.EscrowPaymentRequest
}

func (m *mockGateway) CreateEscrowPayment(ctx context.Context, req *port.EscrowPaymentRequest) (*port.EscrowPaymentResult, error) {
	m.calls = append(m.calls, req)
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &port.EscrowPaymentResult{Success: true, PaymentID: "pay_1", PaymentURL: "https://pay.example.com/pay_1"}, nil
}

type mockSender struct {
	sendFunc func(ctx context.Context, delivery *port.NotificationDelivery) error

	deliveries []*port.NotificationDelivery
}

func (m *mockSender) Send(ctx context.Context, delivery *port.NotificationDelivery) error {
	if m.sendFunc != nil {
		if err := m.sendFunc(ctx, delivery); err != nil {
			return err
		}
	}
	m.deliveries = append(m.deliveries, delivery)
	return nil
}

type mockAnalytics struct {
	events []string
}

func (m *mockAnalytics) Track(ctx context.Context, event string, props map[string]interface{}) {
	m.events = append(m.events, event)
}
