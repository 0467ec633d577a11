package queries

import (
	"errors"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/pkg/errs"
	"jibekjoly/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
		"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
	)
)

// ListOrdersQuery lists the orders the caller is involved in: a client sees
// their own orders, a courier the orders assigned to them, staff every order.
// Anybody else gets an empty list. Newest orders come first.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor identity.Actor) (ListOrdersQuery, error) {
	if err := requireActor(actor); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() identity.Actor {
	return q.actor
}

// ListAvailableOrdersQuery lists the orders a courier may claim right now.
type ListAvailableOrdersQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewListAvailableOrdersQuery(actor identity.Actor) (ListAvailableOrdersQuery, error) {
	if err := requireActor(actor); err != nil {
		return ListAvailableOrdersQuery{}, err
	}
	return ListAvailableOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

func (q ListAvailableOrdersQuery) Actor() identity.Actor {
	return q.actor
}

func requireActor(actor identity.Actor) error {
	if actor.User().IsZero() {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}
