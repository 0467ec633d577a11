package outboxrepo

import (
	"context"
	"time"

	"jibekjoly/internal/core/domain/model/event"
	"jibekjoly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}
	dtos := make([]EventDTO, len(events))
	for i, e := range events {
		dtos[i] = fromDomain(e)
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Pending locks the oldest unpublished events. Rows locked by another relay are
// skipped rather than waited for.
func (r *GormOutboxRepository) Pending(ctx context.Context, limit int) ([]event.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]event.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = id.Bytes()
	}
	return r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at.UTC()).Error
}
