package postgres_test

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "jibekjoly/internal/adapters/out/postgres"
	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// integrationSuite runs a PostgreSQL container with the migrated schema. The
// seed migration provides statuses 1-4, cities 1-3 and package sizes 1-3.
type integrationSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
	statuses  order.StatusCatalog
}

func (s *integrationSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(db))

	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	s.statuses, err = s.factory.Create().StatusRepository().Catalog(ctx)
	s.Require().NoError(err)
}

func (s *integrationSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *integrationSuite) SetupTest() {
	err := s.db.Exec(`TRUNCATE TABLE outbox_events, chat_sessions, orders,
		client_profiles, courier_profiles, users RESTART IDENTITY CASCADE`).Error
	s.Require().NoError(err)
}

func (s *integrationSuite) seedUser(id int64, phone string, role identity.Role, profileName string) identity.Profile {
	s.Require().NoError(s.db.Exec(
		"INSERT INTO users (id, phone_number, role) VALUES (?, ?, ?)", id, phone, string(role),
	).Error)

	table := "client_profiles"
	if role == identity.RoleCourier {
		table = "courier_profiles"
	}
	s.Require().NoError(s.db.Exec(
		"INSERT INTO "+table+" (user_id, full_name) VALUES (?, ?)", id, profileName,
	).Error)

	p, err := identity.RestoreProfile(kernel.ID(id), profileName, phone)
	s.Require().NoError(err)
	return p
}

func (s *integrationSuite) seedClient(id int64) identity.Profile {
	return s.seedUser(id, fmt.Sprintf("+77010%05d", id), identity.RoleClient, "Client Number One")
}

func (s *integrationSuite) seedCourier(id int64) identity.Profile {
	return s.seedUser(id, fmt.Sprintf("+77020%05d", id), identity.RoleCourier, "Courier Number One")
}

func (s *integrationSuite) lifecycle(status order.Status) order.StatusDefinition {
	def, err := s.statuses.Lifecycle(status)
	s.Require().NoError(err)
	return def
}

func (s *integrationSuite) newOrder(client identity.Profile, code string) *order.Order {
	c, err := kernel.OrderCodeFromString(code)
	s.Require().NoError(err)

	size := kernel.ID(1)
	o, err := order.NewOrder(c, client, s.lifecycle(order.Processing), order.Details{
		PickupAddress:     "Abay ave 10",
		DeliveryAddress:   "Dostyk st 5",
		PickupDate:        time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC),
		PickupTimeSlot:    "10:00-12:00",
		RecipientName:     "Nurlan",
		RecipientPhone:    "+77017654321",
		Comment:           "fragile",
		Price:             decimal.RequireFromString("1500.50"),
		PackageSizeID:     &size,
		OriginCityID:      1,
		DestinationCityID: 2,
	}, time.Now())
	s.Require().NoError(err)
	return o
}

// placeOrder stores a new order in its own committed unit of work.
func (s *integrationSuite) placeOrder(client identity.Profile, code string) *order.Order {
	ctx := context.Background()
	o := s.newOrder(client, code)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))
	return o
}

func (s *integrationSuite) countRows(table string) int64 {
	var n int64
	s.Require().NoError(s.db.Table(table).Count(&n).Error)
	return n
}
