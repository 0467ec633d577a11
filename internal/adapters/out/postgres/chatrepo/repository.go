package chatrepo

import (
	"context"
	"errors"
	"time"

	"jibekjoly/internal/core/domain/model/chat"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormChatSessionRepository struct {
	db *gorm.DB
}

func NewGormChatSessionRepository(db *gorm.DB) *GormChatSessionRepository {
	return &GormChatSessionRepository{db: db}
}

// Ensure inserts the session unless the order already has one and then reads
// the stored row, so every caller sees the same session.
func (r *GormChatSessionRepository) Ensure(ctx context.Context, orderID kernel.ID, now time.Time) (*chat.Session, error) {
	session, err := chat.NewSession(orderID, now)
	if err != nil {
		return nil, err
	}

	dto := SessionDTO{
		OrderID:   session.OrderID().Int64(),
		CreatedAt: session.CreatedAt(),
		UpdatedAt: session.UpdatedAt(),
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "order_id"}}, DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return nil, err
	}

	return r.GetByOrder(ctx, orderID)
}

func (r *GormChatSessionRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*chat.Session, error) {
	var dto SessionDTO
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("chat", orderID.Int64())
		}
		return nil, err
	}
	return toDomain(dto)
}
