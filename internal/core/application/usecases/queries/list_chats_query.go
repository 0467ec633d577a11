package queries

import (
	"errors"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/pkg/guard"
)

var ErrListChatsQueryIsNotConstructed = errors.New(
	"ListChatsQuery must be created via NewListChatsQuery constructor",
)

// ListChatsQuery lists the chat sessions the caller takes part in. Staff see
// every session.
type ListChatsQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewListChatsQuery(actor identity.Actor) (ListChatsQuery, error) {
	if err := requireActor(actor); err != nil {
		return ListChatsQuery{}, err
	}
	return ListChatsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListChatsQuery) Validate() error {
	return q.guard.Validate(ErrListChatsQueryIsNotConstructed)
}

func (q ListChatsQuery) Actor() identity.Actor {
	return q.actor
}
