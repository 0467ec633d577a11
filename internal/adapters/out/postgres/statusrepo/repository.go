package statusrepo

import (
	"context"
	"fmt"

	"jibekjoly/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// Catalog loads every status row. A row with an unknown lifecycle code is a
// storage error, not something to skip.
func (r *GormStatusRepository) Catalog(ctx context.Context) (order.StatusCatalog, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("order_index, id").Find(&dtos).Error; err != nil {
		return order.StatusCatalog{}, err
	}

	defs := make([]order.StatusDefinition, 0, len(dtos))
	for _, dto := range dtos {
		def, err := ToDomain(dto)
		if err != nil {
			return order.StatusCatalog{}, fmt.Errorf("order status %d: %w", dto.ID, err)
		}
		defs = append(defs, def)
	}
	return order.NewStatusCatalog(defs), nil
}
