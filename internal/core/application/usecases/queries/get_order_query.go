package queries

import (
	"errors"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"
	"jibekjoly/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetOrderChatQueryIsNotConstructed = errors.New(
		"GetOrderChatQuery must be created via NewGetOrderChatQuery constructor",
	)
)

// GetOrderQuery reads a single order on behalf of the caller.
type GetOrderQuery struct {
	actor   identity.Actor
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(actor identity.Actor, orderID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(requireActor(actor), requireOrderID(orderID)); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() identity.Actor { return q.actor }
func (q GetOrderQuery) OrderID() kernel.ID    { return q.orderID }

// GetOrderChatQuery reads the chat session of an order. Only the two
// participants and staff may see it.
type GetOrderChatQuery struct {
	actor   identity.Actor
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetOrderChatQuery(actor identity.Actor, orderID kernel.ID) (GetOrderChatQuery, error) {
	if err := errors.Join(requireActor(actor), requireOrderID(orderID)); err != nil {
		return GetOrderChatQuery{}, err
	}
	return GetOrderChatQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderChatQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderChatQueryIsNotConstructed)
}

func (q GetOrderChatQuery) Actor() identity.Actor { return q.actor }
func (q GetOrderChatQuery) OrderID() kernel.ID    { return q.orderID }

func requireOrderID(id kernel.ID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("order_id")
	}
	return nil
}
