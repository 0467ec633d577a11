package commands

import (
	"context"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/ports"
)

// RelayOutboxCommandHandler moves pending events from the outbox to the broker.
// Events are locked while being published and marked only after the broker
// accepted them, so delivery is at least once.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle returns the number of events published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	pending, err := outbox.Pending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, pending...); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, len(pending))
	for i, e := range pending {
		ids[i] = e.ID()
	}
	if err = outbox.MarkPublished(ctx, ids, h.clock()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(pending), nil
}
