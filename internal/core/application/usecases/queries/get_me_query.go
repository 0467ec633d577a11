package queries

import (
	"errors"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/guard"
)

var ErrGetMeQueryIsNotConstructed = errors.New(
	"GetMeQuery must be created via NewGetMeQuery constructor",
)

// GetMeQuery describes the authenticated caller. The actor is already resolved
// by the transport, so the handler needs no storage.
type GetMeQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewGetMeQuery(actor identity.Actor) (GetMeQuery, error) {
	if err := requireActor(actor); err != nil {
		return GetMeQuery{}, err
	}
	return GetMeQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMeQuery) Validate() error {
	return q.guard.Validate(ErrGetMeQueryIsNotConstructed)
}

// MeView is the caller's account. Profile is nil for staff and for users who
// have not completed registration.
type MeView struct {
	ID      kernel.ID
	Phone   string
	Role    identity.Role
	IsStaff bool
	Kind    identity.Kind
	Profile *ProfileView
}

type GetMeQueryHandler struct{}

func NewGetMeQueryHandler() GetMeQueryHandler {
	return GetMeQueryHandler{}
}

func (GetMeQueryHandler) Handle(query GetMeQuery) (MeView, error) {
	if err := query.Validate(); err != nil {
		return MeView{}, err
	}

	actor := query.actor
	user := actor.User()
	me := MeView{
		ID:      user.ID(),
		Phone:   user.Phone(),
		Role:    user.Role(),
		IsStaff: user.IsStaff(),
		Kind:    actor.Kind(),
	}

	p, ok := actor.ClientProfile()
	if !ok {
		p, ok = actor.CourierProfile()
	}
	if ok {
		me.Profile = &ProfileView{ID: p.ID(), FullName: p.FullName(), Phone: p.Phone()}
	}
	return me, nil
}
