package ports

import (
	"context"
	"time"

	"jibekjoly/internal/core/domain/model/chat"
	"jibekjoly/internal/core/domain/model/kernel"
)

// ChatSessionRepository persists chat sessions.
type ChatSessionRepository interface {
	// Ensure creates the session of the order unless one exists and returns the
	// stored session either way. Concurrent and repeated calls observe one session.
	Ensure(ctx context.Context, orderID kernel.ID, now time.Time) (*chat.Session, error)

	// GetByOrder returns errs.ObjectNotFoundError when the order has no session.
	GetByOrder(ctx context.Context, orderID kernel.ID) (*chat.Session, error)
}
