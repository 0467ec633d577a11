package services

import (
	"time"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/pkg/errs"
)

// StatusBook resolves status references. order.StatusCatalog implements it.
type StatusBook interface {
	ByID(id kernel.ID) (order.StatusDefinition, error)
	Lifecycle(s order.Status) (order.StatusDefinition, error)
}

// Outcome describes an applied update.
type Outcome struct {
	Path UpdatePath
}

// Claimed reports whether the update was the claim transition. Claims must be
// persisted with a compare-and-set and followed by chat bootstrap.
func (o Outcome) Claimed() bool {
	return o.Path == PathClaim
}

// OrderLifecycle applies update requests to an order in memory. Persisting the
// result atomically is the caller's job.
type OrderLifecycle struct {
	policy OrderAccessPolicy
}

func NewOrderLifecycle(policy OrderAccessPolicy) OrderLifecycle {
	return OrderLifecycle{policy: policy}
}

// Apply evaluates patch from actor against o. Status references are resolved
// before any guard runs, so an unknown status_id is reported as a validation
// error even when the transition would be denied. On error o is unchanged.
func (l OrderLifecycle) Apply(
	actor identity.Actor,
	o *order.Order,
	patch order.Patch,
	statuses StatusBook,
	now time.Time,
) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}

	path := l.policy.ResolveUpdate(actor, o)
	patch = path.Relevant(patch)

	switch path {
	case PathStaff:
		target, err := resolveTarget(patch, statuses)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Path: path}, o.Override(target, patch, now)

	case PathClaim:
		courier, _ := actor.CourierProfile()
		inTransit, err := statuses.Lifecycle(order.InTransit)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Path: path}, o.Claim(courier.ID(), inTransit, now)

	case PathAssignedCourier:
		target, err := resolveTarget(patch, statuses)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Path: path}, o.UpdateByCourier(target, patch, now)

	case PathOwnerCancel:
		target, err := resolveTarget(patch, statuses)
		if err != nil {
			return Outcome{}, err
		}
		if target == nil {
			return Outcome{}, errs.NewAccessDeniedError("update order", "a client may only cancel the order")
		}
		return Outcome{Path: path}, o.Cancel(*target, patch.CancellationReason, now)

	case PathDenied:
	}
	return Outcome{}, errs.NewAccessDeniedError("update order", "actor is neither staff, a participant nor a courier able to claim")
}

func resolveTarget(patch order.Patch, statuses StatusBook) (*order.StatusDefinition, error) {
	if patch.StatusID == nil {
		return nil, nil
	}
	d, err := statuses.ByID(*patch.StatusID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
