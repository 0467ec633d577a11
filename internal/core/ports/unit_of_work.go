package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// run inside the transaction started by Begin. Commit also stores the domain
// events of every aggregate written through the unit of work.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	StatusRepository() StatusRepository
	CatalogRepository() CatalogRepository
	ChatSessionRepository() ChatSessionRepository
	IdentityRepository() IdentityRepository
	OutboxRepository() OutboxRepository
}
