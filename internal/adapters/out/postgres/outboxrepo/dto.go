// Package outboxrepo stores domain events next to the changes they describe.
package outboxrepo

import (
	"time"

	"jibekjoly/internal/core/domain/model/event"
	"jibekjoly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AggregateID int64
	Type        string
	Payload     []byte `gorm:"type:jsonb"`
	OccurredAt  time.Time
	PublishedAt *time.Time
}

func (EventDTO) TableName() string {
	return "outbox_events"
}

func fromDomain(e event.Event) EventDTO {
	return EventDTO{
		ID:          e.ID().Bytes(),
		AggregateID: e.AggregateID().Int64(),
		Type:        string(e.Type()),
		Payload:     e.Payload(),
		OccurredAt:  e.OccurredAt(),
	}
}

func toDomain(dto EventDTO) (event.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return event.Event{}, err
	}
	return event.Restore(id, kernel.ID(dto.AggregateID), event.Type(dto.Type), dto.Payload, dto.OccurredAt)
}
