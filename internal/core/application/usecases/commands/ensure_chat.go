package commands

import (
	"context"
	"time"

	"jibekjoly/internal/core/domain/model/chat"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/core/ports"
)

// EnsureChat opens the chat of a claimed order and touches the order so it
// surfaces as recently active. It is idempotent: when the order already has a
// session that session is returned unchanged. It runs inside the caller's unit
// of work so the chat exists if and only if the claim commits.
func EnsureChat(
	ctx context.Context,
	repo ports.ChatSessionRepository,
	o *order.Order,
	now time.Time,
) (*chat.Session, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	session, err := repo.Ensure(ctx, o.ID(), now)
	if err != nil {
		return nil, err
	}
	o.Touch(now)
	return session, nil
}
