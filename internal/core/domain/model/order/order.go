package order

import (
	"errors"
	"fmt"
	"time"

	"jibekjoly/internal/core/domain/model/event"
	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

const updateAction = "update order"

// Order is the aggregate root of a delivery request.
//
// Invariants:
//   - the order code and the owning client never change
//   - the sender snapshot is copied from the client profile at creation and never resynchronised
//   - a courier is assigned only by Claim and released only by staff
//   - pickupTimestamp is stamped once, by Claim
//   - deliveryTimestamp is stamped once, the first time a courier marks the order delivered
//   - every persisted change bumps version
type Order struct {
	id        kernel.ID
	code      kernel.OrderCode
	clientID  kernel.ID
	courierID *kernel.ID
	status    StatusDefinition
	details   Details

	senderNameSnapshot  string
	senderPhoneSnapshot string
	cancellationReason  *string

	pickupTimestamp   *time.Time
	deliveryTimestamp *time.Time
	createdAt         time.Time
	updatedAt         time.Time

	version int
	changes []change

	isConstructed bool
}

type change struct {
	typ event.Type
	at  time.Time
}

// NewOrder places an order for client in the Processing state with no courier.
// The sender snapshot is taken from the client profile as it is now.
func NewOrder(
	code kernel.OrderCode,
	client identity.Profile,
	processing StatusDefinition,
	details Details,
	now time.Time,
) (*Order, error) {
	o := &Order{
		code:                code,
		clientID:            client.ID(),
		senderNameSnapshot:  client.FullName(),
		senderPhoneSnapshot: client.Phone(),
		createdAt:           now.UTC(),
		updatedAt:           now.UTC(),
		isConstructed:       true,
	}

	var clientErr error
	if client.ID().IsZero() {
		clientErr = errs.NewValueIsRequiredError("client_id")
	}

	if err := errors.Join(
		code.Validate(),
		clientErr,
		o.setInitialStatus(processing),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	o.record(event.OrderCreated, now)
	return o, nil
}

// State is the full persisted state of an order, used to restore it from storage.
type State struct {
	ID                  kernel.ID
	Code                kernel.OrderCode
	ClientID            kernel.ID
	CourierID           *kernel.ID
	Status              StatusDefinition
	Details             Details
	SenderNameSnapshot  string
	SenderPhoneSnapshot string
	CancellationReason  *string
	PickupTimestamp     *time.Time
	DeliveryTimestamp   *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int
}

// RestoreOrder rebuilds an order read from storage.
func RestoreOrder(s State) (*Order, error) {
	var idErr, clientErr, versionErr error
	if s.ID.IsZero() {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if s.ClientID.IsZero() {
		clientErr = errs.NewValueIsRequiredError("client_id")
	}
	if s.Version < 1 {
		versionErr = errs.NewValueIsOutOfRangeError("version", s.Version, 1, "unbounded")
	}

	o := &Order{
		id:                  s.ID,
		code:                s.Code,
		clientID:            s.ClientID,
		courierID:           copyID(s.CourierID),
		status:              s.Status,
		senderNameSnapshot:  s.SenderNameSnapshot,
		senderPhoneSnapshot: s.SenderPhoneSnapshot,
		cancellationReason:  s.CancellationReason,
		pickupTimestamp:     s.PickupTimestamp,
		deliveryTimestamp:   s.DeliveryTimestamp,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		version:             s.Version,
		isConstructed:       true,
	}

	if err := errors.Join(
		idErr,
		s.Code.Validate(),
		clientErr,
		s.Status.Validate(),
		o.setDetails(s.Details),
		versionErr,
	); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID              { return o.id }
func (o *Order) Code() kernel.OrderCode     { return o.code }
func (o *Order) ClientID() kernel.ID        { return o.clientID }
func (o *Order) Status() StatusDefinition   { return o.status }
func (o *Order) Details() Details           { return o.details }
func (o *Order) SenderNameSnapshot() string { return o.senderNameSnapshot }
func (o *Order) SenderPhoneSnapshot() string {
	return o.senderPhoneSnapshot
}
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) Version() int         { return o.version }

// CourierID returns the assigned courier profile, or nil.
func (o *Order) CourierID() *kernel.ID { return copyID(o.courierID) }

func (o *Order) CancellationReason() *string   { return o.cancellationReason }
func (o *Order) PickupTimestamp() *time.Time   { return o.pickupTimestamp }
func (o *Order) DeliveryTimestamp() *time.Time { return o.deliveryTimestamp }

// IsAssigned reports whether a courier is assigned.
func (o *Order) IsAssigned() bool { return o.courierID != nil }

// IsAssignedTo reports whether courierID is the assigned courier.
func (o *Order) IsAssignedTo(courierID kernel.ID) bool {
	return o.courierID != nil && *o.courierID == courierID
}

// IsClaimable reports whether a courier may claim the order right now.
func (o *Order) IsClaimable() bool {
	return o.courierID == nil && o.status.Is(Processing)
}

// Claim assigns the courier and moves the order to inTransit. It fails with a
// conflict when the order is no longer unassigned and Processing.
func (o *Order) Claim(courierID kernel.ID, inTransit StatusDefinition, now time.Time) error {
	if courierID.IsZero() {
		return errs.NewValueIsRequiredError("courier_id")
	}
	if !inTransit.Is(InTransit) {
		return errs.NewValueIsInvalidErrorWithCause("status_id", fmt.Errorf("%s is not the in transit status", inTransit.Name()))
	}
	if !o.IsClaimable() {
		return errs.NewConflictError("order", o.id, "order is no longer claimable")
	}

	o.courierID = &courierID
	o.status = inTransit
	stamp := now.UTC()
	o.pickupTimestamp = &stamp
	o.Touch(now)
	o.record(event.OrderClaimed, now)
	return nil
}

// UpdateByCourier applies the assigned courier's edits, status included. The
// order must be in transit. The first move to delivered stamps deliveryTimestamp.
func (o *Order) UpdateByCourier(target *StatusDefinition, p Patch, now time.Time) error {
	if !o.status.Is(InTransit) {
		return errs.NewAccessDeniedError(updateAction, "the assigned courier may only edit an order in transit")
	}

	details, err := p.mergeInto(o.details).Normalize()
	if err != nil {
		return err
	}
	o.details = details

	typ := event.OrderUpdated
	if target != nil {
		o.status = *target
		switch {
		case target.Is(Delivered) && o.deliveryTimestamp == nil:
			stamp := now.UTC()
			o.deliveryTimestamp = &stamp
			typ = event.OrderDelivered
		case target.Is(Cancelled):
			typ = event.OrderCancelled
		}
	}

	o.Touch(now)
	o.record(typ, now)
	return nil
}

// Cancel is the owning client's only transition: from Processing to any
// cancelled variant. The reason is stored verbatim when supplied.
func (o *Order) Cancel(target StatusDefinition, reason *string, now time.Time) error {
	if !o.status.Is(Processing) {
		return errs.NewAccessDeniedError(updateAction, "an order can only be cancelled while processing")
	}
	if !target.Is(Cancelled) {
		return errs.NewAccessDeniedError(updateAction, "a client may only move the order to a cancelled status")
	}

	o.status = target
	if reason != nil {
		r := *reason
		o.cancellationReason = &r
	}
	o.Touch(now)
	o.record(event.OrderCancelled, now)
	return nil
}

// Override applies a staff edit as-is: any status, any detail, the cancellation
// reason and, optionally, releasing the courier. No timestamp side effects.
func (o *Order) Override(target *StatusDefinition, p Patch, now time.Time) error {
	details, err := p.mergeInto(o.details).Normalize()
	if err != nil {
		return err
	}
	o.details = details

	if target != nil {
		o.status = *target
	}
	if p.CancellationReason != nil {
		r := *p.CancellationReason
		o.cancellationReason = &r
	}
	if p.UnassignCourier {
		o.courierID = nil
	}

	o.Touch(now)
	o.record(event.OrderUpdated, now)
	return nil
}

// Touch refreshes updatedAt. Every mutation calls it, and chat bootstrap calls
// it to surface the order as recently active.
func (o *Order) Touch(now time.Time) {
	if now = now.UTC(); now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

// MarkPersisted is called by the repository after a successful write: it adopts
// the storage-assigned id on first insert and advances the version.
func (o *Order) MarkPersisted(id kernel.ID) {
	if o.id.IsZero() {
		o.id = id
	}
	o.version++
}

// DomainEvents returns the events recorded since the last ClearDomainEvents,
// carrying the order's current state.
func (o *Order) DomainEvents() ([]event.Event, error) {
	if len(o.changes) == 0 {
		return nil, nil
	}

	payload := o.eventPayload()
	events := make([]event.Event, 0, len(o.changes))
	for _, c := range o.changes {
		e, err := event.New(c.typ, o.id, payload, c.at)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (o *Order) ClearDomainEvents() {
	o.changes = nil
}

type eventPayload struct {
	OrderID       int64      `json:"order_id"`
	UniqueOrderID string     `json:"unique_order_id"`
	Status        string     `json:"status"`
	StatusID      int64      `json:"status_id"`
	ClientID      int64      `json:"client_id"`
	CourierID     *int64     `json:"courier_id,omitempty"`
	PickupAt      *time.Time `json:"pickup_timestamp,omitempty"`
	DeliveredAt   *time.Time `json:"delivery_timestamp,omitempty"`
	Version       int        `json:"version"`
}

func (o *Order) eventPayload() eventPayload {
	p := eventPayload{
		OrderID:       o.id.Int64(),
		UniqueOrderID: o.code.String(),
		Status:        o.status.Status().Code(),
		StatusID:      o.status.ID().Int64(),
		ClientID:      o.clientID.Int64(),
		PickupAt:      o.pickupTimestamp,
		DeliveredAt:   o.deliveryTimestamp,
		Version:       o.version,
	}
	if o.courierID != nil {
		c := o.courierID.Int64()
		p.CourierID = &c
	}
	return p
}

func (o *Order) record(typ event.Type, at time.Time) {
	o.changes = append(o.changes, change{typ: typ, at: at.UTC()})
}

func (o *Order) setInitialStatus(processing StatusDefinition) error {
	if err := processing.Validate(); err != nil {
		return err
	}
	if !processing.Is(Processing) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status_id",
			fmt.Errorf("%s is not the processing status", processing.Name()),
		)
	}
	o.status = processing
	return nil
}

func (o *Order) setDetails(d Details) error {
	normalized, err := d.Normalize()
	if err != nil {
		return err
	}
	o.details = normalized
	return nil
}

func copyID(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
