// Package chat holds the per-order chat channel. This service only creates the
// channel (once per order, when a courier claims the order) and reads it.
package chat

import (
	"errors"
	"time"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")

// Session is the chat channel of one order. There is at most one per order.
type Session struct {
	id        kernel.ID
	orderID   kernel.ID
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewSession opens a channel for an order that is not persisted yet.
func NewSession(orderID kernel.ID, now time.Time) (*Session, error) {
	if orderID.IsZero() {
		return nil, errs.NewValueIsRequiredError("order_id")
	}
	return &Session{
		orderID:       orderID,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreSession rebuilds a session read from storage.
func RestoreSession(id, orderID kernel.ID, createdAt, updatedAt time.Time) (*Session, error) {
	var idErr, orderErr error
	if id.IsZero() {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if orderID.IsZero() {
		orderErr = errs.NewValueIsRequiredError("order_id")
	}
	if err := errors.Join(idErr, orderErr); err != nil {
		return nil, err
	}
	return &Session{
		id:            id,
		orderID:       orderID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) ID() kernel.ID        { return s.id }
func (s *Session) OrderID() kernel.ID   { return s.orderID }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }
