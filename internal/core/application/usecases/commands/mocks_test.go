package commands_test

import (
	"context"
	"time"

	"jibekjoly/internal/core/application/usecases/commands"
	"jibekjoly/internal/core/domain/model/chat"
	"jibekjoly/internal/core/domain/model/event"
	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Claim(ctx context.Context, o *order.Order, processing order.StatusDefinition) error {
	return m.Called(ctx, o, processing).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Catalog(ctx context.Context) (order.StatusCatalog, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.StatusCatalog), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) CityExists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) PackageSizeExists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockChatSessionRepository struct{ mock.Mock }

func (m *MockChatSessionRepository) Ensure(ctx context.Context, orderID kernel.ID, now time.Time) (*chat.Session, error) {
	args := m.Called(ctx, orderID, now)
	s, _ := args.Get(0).(*chat.Session)
	return s, args.Error(1)
}

func (m *MockChatSessionRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*chat.Session, error) {
	args := m.Called(ctx, orderID)
	s, _ := args.Get(0).(*chat.Session)
	return s, args.Error(1)
}

type MockIdentityRepository struct{ mock.Mock }

func (m *MockIdentityRepository) GetUser(ctx context.Context, id kernel.ID) (identity.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(identity.User), args.Error(1)
}

func (m *MockIdentityRepository) GetProfile(ctx context.Context, user identity.User) (*identity.Profile, error) {
	args := m.Called(ctx, user)
	p, _ := args.Get(0).(*identity.Profile)
	return p, args.Error(1)
}

func (m *MockIdentityRepository) SaveProfile(ctx context.Context, role identity.Role, p identity.Profile) error {
	return m.Called(ctx, role, p).Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, events ...event.Event) error {
	return m.Called(ctx, events).Error(0)
}

func (m *MockOutboxRepository) Pending(ctx context.Context, limit int) ([]event.Event, error) {
	args := m.Called(ctx, limit)
	events, _ := args.Get(0).([]event.Event)
	return events, args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...event.Event) error {
	return m.Called(ctx, events).Error(0)
}

// MockUoW implements every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusRepository() ports.StatusRepository {
	return m.Called().Get(0).(ports.StatusRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) ChatSessionRepository() ports.ChatSessionRepository {
	return m.Called().Get(0).(ports.ChatSessionRepository)
}

func (m *MockUoW) IdentityRepository() ports.IdentityRepository {
	return m.Called().Get(0).(ports.IdentityRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	return m.Called().Get(0).(commands.ProfileUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}
