package commands

import (
	"context"

	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/core/domain/services"
)

// UpdateOrderCommandHandler is the entry point of the order lifecycle. Within one
// unit of work it loads the order and the status table, validates references the
// selected path will use, applies the transition and persists it. A claim is
// written with a compare-and-set and opens the order's chat; if any step fails
// nothing is stored.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	lifecycle  services.OrderLifecycle
	clock      Clock
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) UpdateOrderCommandHandler {
	policy := services.NewOrderAccessPolicy()
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		lifecycle:  services.NewOrderLifecycle(policy),
		clock:      clock,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	statuses, err := uow.StatusRepository().Catalog(ctx)
	if err != nil {
		return nil, err
	}

	path := h.policy.ResolveUpdate(cmd.Actor(), o)
	if err = checkReferences(ctx, uow.CatalogRepository(), path.Relevant(cmd.Patch())); err != nil {
		return nil, err
	}

	now := h.clock()
	outcome, err := h.lifecycle.Apply(cmd.Actor(), o, cmd.Patch(), statuses, now)
	if err != nil {
		return nil, err
	}

	if outcome.Claimed() {
		processing, lookupErr := statuses.Lifecycle(order.Processing)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if err = orderRepo.Claim(ctx, o, processing); err != nil {
			return nil, err
		}
		if _, err = EnsureChat(ctx, uow.ChatSessionRepository(), o, now); err != nil {
			return nil, err
		}
	} else if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
