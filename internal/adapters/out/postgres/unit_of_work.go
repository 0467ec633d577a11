// Package postgres provides the GORM-based Unit of Work, the schema migrations
// and, in its subpackages, the repositories bound to a unit of work.
//
// A unit of work owns one database transaction. Repositories obtained from it
// after Begin run inside that transaction; before Begin they use the pool
// directly. Every aggregate written through a repository is tracked, and Commit
// stores the tracked aggregates' domain events in the outbox before the
// transaction commits, so an order change and its event become visible together.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is used by one goroutine; concurrent requests create
// their own instances.
package postgres

import (
	"context"
	"fmt"

	"jibekjoly/internal/adapters/out/postgres/catalogrepo"
	"jibekjoly/internal/adapters/out/postgres/chatrepo"
	"jibekjoly/internal/adapters/out/postgres/identityrepo"
	"jibekjoly/internal/adapters/out/postgres/orderrepo"
	"jibekjoly/internal/adapters/out/postgres/outboxrepo"
	"jibekjoly/internal/adapters/out/postgres/statusrepo"
	"jibekjoly/internal/core/domain/model/event"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is an aggregate that records domain events.
type eventSource interface {
	DomainEvents() ([]event.Event, error)
	ClearDomainEvents()
}

// trackedAggregate is an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate eventSource
}

// GormUnitOfWorkFactory creates a fresh GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.New()
}

// New is Create with the concrete type, for callers that need TrackedAggregates.
func (f *GormUnitOfWorkFactory) New() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// written within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open is
// a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit stores the domain events of the tracked aggregates and commits. If
// storing the events fails the transaction stays open for Rollback.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.storeDomainEvents(ctx); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, tracked := range uow.trackedAggregates {
		tracked.Aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction and forgets the tracked aggregates. Their
// recorded events stay on the aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StatusRepository() ports.StatusRepository {
	return statusrepo.NewGormStatusRepository(uow.conn())
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) ChatSessionRepository() ports.ChatSessionRepository {
	return chatrepo.NewGormChatSessionRepository(uow.conn())
}

func (uow *GormUnitOfWork) IdentityRepository() ports.IdentityRepository {
	return identityrepo.NewGormIdentityRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate written by a repository. Aggregates
// without domain events are ignored; tracking the same id twice keeps one entry.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	source, ok := aggregate.(eventSource)
	if !ok {
		return
	}
	for i, tracked := range uow.trackedAggregates {
		if tracked.ID == id {
			uow.trackedAggregates[i].Aggregate = source
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: source,
	})
}

// TrackedAggregates returns the ids of the aggregates written so far.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.ID {
	ids := make([]kernel.ID, len(uow.trackedAggregates))
	for i, tracked := range uow.trackedAggregates {
		ids[i] = tracked.ID
	}
	return ids
}

func (uow *GormUnitOfWork) storeDomainEvents(ctx context.Context) error {
	var pending []event.Event
	for _, tracked := range uow.trackedAggregates {
		events, err := tracked.Aggregate.DomainEvents()
		if err != nil {
			return fmt.Errorf("collect events of aggregate %s: %w", tracked.ID, err)
		}
		pending = append(pending, events...)
	}
	return uow.OutboxRepository().Add(ctx, pending...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
