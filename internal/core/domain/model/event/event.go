// Package event defines the integration events the service emits about orders.
// Events are stored in the outbox in the same transaction as the change they
// describe and relayed to the message broker afterwards.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"
)

// Type names an order event on the wire.
type Type string

const (
	OrderCreated   Type = "order.created"
	OrderClaimed   Type = "order.claimed"
	OrderUpdated   Type = "order.updated"
	OrderCancelled Type = "order.cancelled"
	OrderDelivered Type = "order.delivered"
)

func (t Type) Validate() error {
	switch t {
	case OrderCreated, OrderClaimed, OrderUpdated, OrderCancelled, OrderDelivered:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("event_type", fmt.Errorf("%q is not a known event type", string(t)))
}

// Event is an immutable record of something that happened to an aggregate.
type Event struct {
	id          kernel.UUID
	aggregateID kernel.ID
	typ         Type
	payload     json.RawMessage
	occurredAt  time.Time
}

// New builds an event with a fresh identifier, encoding payload as JSON.
func New(typ Type, aggregateID kernel.ID, payload any, occurredAt time.Time) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s payload: %w", typ, err)
	}
	return Restore(kernel.NewUUID(), aggregateID, typ, raw, occurredAt)
}

// Restore rebuilds an event read from the outbox.
func Restore(id kernel.UUID, aggregateID kernel.ID, typ Type, payload []byte, occurredAt time.Time) (Event, error) {
	var aggregateErr error
	if aggregateID.IsZero() {
		aggregateErr = errs.NewValueIsRequiredError("aggregate_id")
	}
	if err := errors.Join(id.Validate(), aggregateErr, typ.Validate()); err != nil {
		return Event{}, err
	}
	return Event{
		id:          id,
		aggregateID: aggregateID,
		typ:         typ,
		payload:     json.RawMessage(payload),
		occurredAt:  occurredAt.UTC(),
	}, nil
}

func (e Event) ID() kernel.UUID          { return e.id }
func (e Event) AggregateID() kernel.ID   { return e.aggregateID }
func (e Event) Type() Type               { return e.typ }
func (e Event) Payload() json.RawMessage { return e.payload }
func (e Event) OccurredAt() time.Time    { return e.occurredAt }
