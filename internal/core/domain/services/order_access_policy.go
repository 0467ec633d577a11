package services

import (
	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/pkg/errs"
)

// UpdatePath is the single rule set an update request is evaluated under.
type UpdatePath int

const (
	PathDenied UpdatePath = iota
	PathStaff
	PathClaim
	PathAssignedCourier
	PathOwnerCancel
)

func (p UpdatePath) String() string {
	switch p {
	case PathStaff:
		return "staff"
	case PathClaim:
		return "claim"
	case PathAssignedCourier:
		return "assigned_courier"
	case PathOwnerCancel:
		return "owner_cancel"
	case PathDenied:
		return "denied"
	}
	return "unknown"
}

// Relevant strips the fields the path ignores, so that ignored fields are neither
// validated nor applied.
func (p UpdatePath) Relevant(patch order.Patch) order.Patch {
	switch p {
	case PathStaff:
		return patch
	case PathAssignedCourier:
		patch.CancellationReason = nil
		patch.UnassignCourier = false
		return patch
	case PathOwnerCancel:
		return patch.CancellationOnly()
	case PathClaim, PathDenied:
	}
	return order.Patch{}
}

// AccessSubject is the part of an order that read decisions depend on. Both the
// aggregate and the query read models satisfy it.
type AccessSubject interface {
	ClientID() kernel.ID
	IsClaimable() bool
	IsAssignedTo(courierID kernel.ID) bool
}

// OrderAccessPolicy decides what an actor may do with an order.
type OrderAccessPolicy struct{}

func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// CanRead: staff, the owning client, the assigned courier, and any courier while
// the order is still claimable.
func (OrderAccessPolicy) CanRead(actor identity.Actor, o AccessSubject) bool {
	switch actor.Kind() {
	case identity.Staff:
		return true
	case identity.Client:
		return actor.IsClient(o.ClientID())
	case identity.Courier:
		p, _ := actor.CourierProfile()
		return o.IsClaimable() || o.IsAssignedTo(p.ID())
	case identity.Unprofiled:
	}
	return false
}

// CanViewChat: only the two participants and staff. A claimable order has no chat yet.
func (OrderAccessPolicy) CanViewChat(actor identity.Actor, o AccessSubject) bool {
	switch actor.Kind() {
	case identity.Staff:
		return true
	case identity.Client:
		return actor.IsClient(o.ClientID())
	case identity.Courier:
		p, _ := actor.CourierProfile()
		return o.IsAssignedTo(p.ID())
	case identity.Unprofiled:
	}
	return false
}

// ResolveUpdate picks the first matching rule, in this order: staff, claim by any
// courier, edit by the assigned courier, cancellation by the owner.
func (OrderAccessPolicy) ResolveUpdate(actor identity.Actor, o *order.Order) UpdatePath {
	if actor.IsStaff() {
		return PathStaff
	}
	if courier, ok := actor.CourierProfile(); ok {
		if o.IsClaimable() {
			return PathClaim
		}
		if o.IsAssignedTo(courier.ID()) {
			return PathAssignedCourier
		}
		return PathDenied
	}
	if actor.IsClient(o.ClientID()) {
		return PathOwnerCancel
	}
	return PathDenied
}

// PlacingClient returns the profile new orders are placed under. Only clients
// with a profile may place orders.
func (OrderAccessPolicy) PlacingClient(actor identity.Actor) (identity.Profile, error) {
	p, ok := actor.RoleProfile()
	if !ok || actor.User().Role() != identity.RoleClient {
		return identity.Profile{}, errs.NewAccessDeniedError("create order", "only clients with a profile may place orders")
	}
	return p, nil
}
