package ports

import (
	"context"
	"time"

	"jibekjoly/internal/core/domain/model/event"
	"jibekjoly/internal/core/domain/model/kernel"
)

// OutboxRepository stores events for later publication.
type OutboxRepository interface {
	Add(ctx context.Context, events ...event.Event) error

	// Pending returns up to limit unpublished events, oldest first, locked so that
	// concurrent relays skip them.
	Pending(ctx context.Context, limit int) ([]event.Event, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.Event) error
}
