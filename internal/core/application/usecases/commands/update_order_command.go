package commands

import (
	"errors"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/pkg/errs"
	"jibekjoly/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a partial update of an order by an actor. What it does
// (claim, courier edit, cancellation, staff override) depends on the actor and
// the order's current state.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	orderID kernel.ID
	patch   order.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(actor identity.Actor, orderID kernel.ID, patch order.Patch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		actor: actor,
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}
	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Actor() identity.Actor { return c.actor }
func (c UpdateOrderCommand) OrderID() kernel.ID    { return c.orderID }
func (c UpdateOrderCommand) Patch() order.Patch    { return c.patch }

func (c *UpdateOrderCommand) setOrderID(id kernel.ID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("id")
	}
	c.orderID = id
	return nil
}
