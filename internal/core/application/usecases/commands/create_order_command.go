package commands

import (
	"errors"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new delivery order on behalf of the calling client.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, order.Details{
//	    PickupAddress: "Abay ave 10", DeliveryAddress: "Dostyk st 5", ...
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand normalizes and validates the order fields.
func NewCreateOrderCommand(actor identity.Actor, details order.Details) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDetails(details); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() identity.Actor {
	return c.actor
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	normalized, err := details.Normalize()
	if err != nil {
		return err
	}
	c.details = normalized
	return nil
}
