// Package statusrepo reads the configured order statuses.
package statusrepo

import (
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
)

// StatusDTO is a row of order_statuses. The orders repository embeds it as the
// preloaded status of an order.
type StatusDTO struct {
	ID          int64 `gorm:"primaryKey"`
	Code        string
	Name        string
	Description string
	OrderIndex  int
}

func (StatusDTO) TableName() string {
	return "order_statuses"
}

// ToDomain restores the status definition stored in dto.
func ToDomain(dto StatusDTO) (order.StatusDefinition, error) {
	status, err := order.ParseStatus(dto.Code)
	if err != nil {
		return order.StatusDefinition{}, err
	}
	return order.RestoreStatusDefinition(kernel.ID(dto.ID), status, dto.Name, dto.Description, dto.OrderIndex)
}
