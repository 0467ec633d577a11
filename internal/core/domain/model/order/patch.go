package order

import (
	"time"

	"jibekjoly/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Patch is a partial update request. Nil fields are left untouched. Which fields
// are honoured depends on who sends the patch.
type Patch struct {
	StatusID *kernel.ID

	PickupAddress     *string
	DeliveryAddress   *string
	PickupDate        *time.Time
	PickupTimeSlot    *string
	RecipientName     *string
	RecipientPhone    *string
	Comment           *string
	Price             *decimal.Decimal
	PackageSizeID     *kernel.ID
	OriginCityID      *kernel.ID
	DestinationCityID *kernel.ID

	CancellationReason *string

	// UnassignCourier releases the assigned courier. Staff only.
	UnassignCourier bool
}

// HasDetails reports whether any caller-writable detail field is set.
func (p Patch) HasDetails() bool {
	return p.PickupAddress != nil || p.DeliveryAddress != nil || p.PickupDate != nil ||
		p.PickupTimeSlot != nil || p.RecipientName != nil || p.RecipientPhone != nil ||
		p.Comment != nil || p.Price != nil || p.PackageSizeID != nil ||
		p.OriginCityID != nil || p.DestinationCityID != nil
}

// DetailsOnly drops status, cancellation and assignment changes.
func (p Patch) DetailsOnly() Patch {
	p.StatusID = nil
	p.CancellationReason = nil
	p.UnassignCourier = false
	return p
}

// CancellationOnly keeps the status reference and the reason, nothing else.
func (p Patch) CancellationOnly() Patch {
	return Patch{StatusID: p.StatusID, CancellationReason: p.CancellationReason}
}

// mergeInto overlays the set fields onto d.
func (p Patch) mergeInto(d Details) Details {
	if p.PickupAddress != nil {
		d.PickupAddress = *p.PickupAddress
	}
	if p.DeliveryAddress != nil {
		d.DeliveryAddress = *p.DeliveryAddress
	}
	if p.PickupDate != nil {
		d.PickupDate = *p.PickupDate
	}
	if p.PickupTimeSlot != nil {
		d.PickupTimeSlot = *p.PickupTimeSlot
	}
	if p.RecipientName != nil {
		d.RecipientName = *p.RecipientName
	}
	if p.RecipientPhone != nil {
		d.RecipientPhone = *p.RecipientPhone
	}
	if p.Comment != nil {
		d.Comment = *p.Comment
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.PackageSizeID != nil {
		id := *p.PackageSizeID
		d.PackageSizeID = &id
	}
	if p.OriginCityID != nil {
		d.OriginCityID = *p.OriginCityID
	}
	if p.DestinationCityID != nil {
		d.DestinationCityID = *p.DestinationCityID
	}
	return d
}
