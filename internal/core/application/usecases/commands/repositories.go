// Package commands contains the operations that change system state.
// Every command follows the same shape: a guarded command value built by its
// constructor, and a handler that validates it, opens a unit of work, applies
// domain logic and commits. Any error rolls the whole unit of work back.
package commands

import (
	"context"
	"time"

	"jibekjoly/internal/core/ports"
)

// Clock supplies the current time to handlers.
type Clock func() time.Time

// Unit of Work interfaces narrowed to what each handler uses.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	ChatRepoFactory interface {
		ChatSessionRepository() ports.ChatSessionRepository
	}

	IdentityRepoFactory interface {
		IdentityRepository() ports.IdentityRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW serves the order lifecycle commands: placing, updating and claiming
	// orders together with chat bootstrap.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... apply the change
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
		CatalogRepoFactory
		ChatRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProfileUoW serves profile edits.
	ProfileUoW interface {
		TxManager
		IdentityRepoFactory
	}

	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// OutboxUoW serves the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
