// Package ports defines the contracts between the core and its adapters:
// repositories bound to a unit of work and the outbound event publisher.
package ports

import (
	"context"
	"errors"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
)

// ErrOrderCodeTaken is returned by OrderRepository.Add when the order code collides
// with an existing order. The caller may retry with a fresh code; the surrounding
// transaction stays usable.
var ErrOrderCodeTaken = errors.New("order code is already taken")

// OrderRepository persists Order aggregates. Every write is conditioned on the
// version the aggregate was read at and advances it.
type OrderRepository interface {
	// Add inserts a new order and assigns its id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes an order changed by any path other than a claim.
	// A stale version yields errs.ConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Claim writes a claimed order with a compare-and-set on "same version, still
	// unassigned, still in the processing status". Losing the race yields
	// errs.ConflictError and writes nothing.
	Claim(ctx context.Context, aggregate *order.Order, processing order.StatusDefinition) error

	// Get loads an order or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}

// StatusRepository reads the configured order statuses.
type StatusRepository interface {
	Catalog(ctx context.Context) (order.StatusCatalog, error)
}

// CatalogRepository answers reference checks against cities and package sizes.
type CatalogRepository interface {
	CityExists(ctx context.Context, id kernel.ID) (bool, error)
	PackageSizeExists(ctx context.Context, id kernel.ID) (bool, error)
}
