// Package orderrepo maps the Order aggregate to the orders table.
package orderrepo

import (
	"time"

	"jibekjoly/internal/adapters/out/postgres/statusrepo"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is a row of orders with its status preloaded.
type OrderDTO struct {
	ID                  int64 `gorm:"primaryKey"`
	UniqueOrderID       string
	ClientID            int64
	CourierID           *int64
	StatusID            int64
	Status              statusrepo.StatusDTO `gorm:"foreignKey:StatusID"`
	PackageSizeID       *int64
	OriginCityID        int64
	DestinationCityID   int64
	PickupAddress       string
	DeliveryAddress     string
	PickupDate          time.Time `gorm:"type:date"`
	PickupTimeSlot      string
	RecipientName       string
	RecipientPhone      string
	Comment             string
	Price               decimal.Decimal `gorm:"type:numeric(10,2)"`
	SenderNameSnapshot  string
	SenderPhoneSnapshot string
	CancellationReason  *string
	PickupTimestamp     *time.Time
	DeliveryTimestamp   *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int
}

func (OrderDTO) TableName() string {
	return "orders"
}

// mutableColumns lists what an update may write. The code, the owner and the
// creation time are immutable.
func (dto OrderDTO) mutableColumns() map[string]any {
	return map[string]any{
		"courier_id":          dto.CourierID,
		"status_id":           dto.StatusID,
		"package_size_id":     dto.PackageSizeID,
		"origin_city_id":      dto.OriginCityID,
		"destination_city_id": dto.DestinationCityID,
		"pickup_address":      dto.PickupAddress,
		"delivery_address":    dto.DeliveryAddress,
		"pickup_date":         dto.PickupDate,
		"pickup_time_slot":    dto.PickupTimeSlot,
		"recipient_name":      dto.RecipientName,
		"recipient_phone":     dto.RecipientPhone,
		"comment":             dto.Comment,
		"price":               dto.Price,
		"cancellation_reason": dto.CancellationReason,
		"pickup_timestamp":    dto.PickupTimestamp,
		"delivery_timestamp":  dto.DeliveryTimestamp,
		"updated_at":          dto.UpdatedAt,
		"version":             dto.Version,
	}
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	return OrderDTO{
		ID:                  o.ID().Int64(),
		UniqueOrderID:       o.Code().String(),
		ClientID:            o.ClientID().Int64(),
		CourierID:           idPtr(o.CourierID()),
		StatusID:            o.Status().ID().Int64(),
		PackageSizeID:       idPtr(d.PackageSizeID),
		OriginCityID:        d.OriginCityID.Int64(),
		DestinationCityID:   d.DestinationCityID.Int64(),
		PickupAddress:       d.PickupAddress,
		DeliveryAddress:     d.DeliveryAddress,
		PickupDate:          d.PickupDate,
		PickupTimeSlot:      d.PickupTimeSlot,
		RecipientName:       d.RecipientName,
		RecipientPhone:      d.RecipientPhone,
		Comment:             d.Comment,
		Price:               d.Price,
		SenderNameSnapshot:  o.SenderNameSnapshot(),
		SenderPhoneSnapshot: o.SenderPhoneSnapshot(),
		CancellationReason:  o.CancellationReason(),
		PickupTimestamp:     o.PickupTimestamp(),
		DeliveryTimestamp:   o.DeliveryTimestamp(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		Version:             o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := statusrepo.ToDomain(dto.Status)
	if err != nil {
		return nil, err
	}

	code, err := kernel.OrderCodeFromString(dto.UniqueOrderID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.State{
		ID:        kernel.ID(dto.ID),
		Code:      code,
		ClientID:  kernel.ID(dto.ClientID),
		CourierID: kernelID(dto.CourierID),
		Status:    status,
		Details: order.Details{
			PickupAddress:     dto.PickupAddress,
			DeliveryAddress:   dto.DeliveryAddress,
			PickupDate:        dto.PickupDate,
			PickupTimeSlot:    dto.PickupTimeSlot,
			RecipientName:     dto.RecipientName,
			RecipientPhone:    dto.RecipientPhone,
			Comment:           dto.Comment,
			Price:             dto.Price,
			PackageSizeID:     kernelID(dto.PackageSizeID),
			OriginCityID:      kernel.ID(dto.OriginCityID),
			DestinationCityID: kernel.ID(dto.DestinationCityID),
		},
		SenderNameSnapshot:  dto.SenderNameSnapshot,
		SenderPhoneSnapshot: dto.SenderPhoneSnapshot,
		CancellationReason:  dto.CancellationReason,
		PickupTimestamp:     dto.PickupTimestamp,
		DeliveryTimestamp:   dto.DeliveryTimestamp,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
		Version:             dto.Version,
	})
}

func idPtr(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}

func kernelID(v *int64) *kernel.ID {
	if v == nil {
		return nil
	}
	id := kernel.ID(*v)
	return &id
}
