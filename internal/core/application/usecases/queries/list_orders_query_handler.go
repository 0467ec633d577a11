package queries

import (
	"context"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads role-scoped order lists straight from the
// database, bypassing the aggregate.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	switch actor.Kind() {
	case identity.Staff:
		return queryOrders(ctx, h.db, "")
	case identity.Client:
		p, _ := actor.ClientProfile()
		return queryOrders(ctx, h.db, " WHERE o.client_id = ?", p.ID().Int64())
	case identity.Courier:
		p, _ := actor.CourierProfile()
		return queryOrders(ctx, h.db, " WHERE o.courier_id = ?", p.ID().Int64())
	case identity.Unprofiled:
	}
	return emptyOrders(), nil
}

// ListAvailableOrdersQueryHandler lists unassigned orders still in processing.
// Only couriers with a profile see any.
type ListAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableOrdersQueryHandler(db *gorm.DB) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{db: db}
}

func (h ListAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, ok := query.Actor().CourierProfile(); !ok {
		return emptyOrders(), nil
	}

	return queryOrders(ctx, h.db, " WHERE o.courier_id IS NULL AND s.code = ?", order.Processing.Code())
}
