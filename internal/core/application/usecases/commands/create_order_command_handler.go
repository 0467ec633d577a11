package commands

import (
	"context"
	"errors"
	"time"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/core/domain/services"
	"jibekjoly/internal/core/ports"

	"github.com/sethvargo/go-retry"
)

// maxOrderCodeAttempts bounds how many fresh codes are drawn when the generated
// order code collides with an existing one.
const maxOrderCodeAttempts = 5

// CreateOrderCommandHandler places orders. The order starts in the processing
// status with the client's current name and phone as the sender snapshot.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	clock      Clock
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderAccessPolicy(),
		clock:      clock,
	}
}

// Handle returns the stored order. Non-clients get errs.AccessDeniedError, a
// missing processing status row errs.MisconfigurationError.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	client, err := h.policy.PlacingClient(cmd.Actor())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statuses, err := uow.StatusRepository().Catalog(ctx)
	if err != nil {
		return nil, err
	}
	processing, err := statuses.Lifecycle(order.Processing)
	if err != nil {
		return nil, err
	}

	if err = checkReferences(ctx, uow.CatalogRepository(), detailReferences(cmd.Details())); err != nil {
		return nil, err
	}

	now := h.clock()
	repo := uow.OrderRepository()
	backoff := retry.WithMaxRetries(maxOrderCodeAttempts-1, retry.NewConstant(time.Millisecond))

	var created *order.Order
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		o, newErr := order.NewOrder(kernel.NewRandomOrderCode(), client, processing, cmd.Details(), now)
		if newErr != nil {
			return newErr
		}
		if addErr := repo.Add(ctx, o); addErr != nil {
			if errors.Is(addErr, ports.ErrOrderCodeTaken) {
				return retry.RetryableError(addErr)
			}
			return addErr
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}
