package order

import (
	"errors"
	"time"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	maxAddressLength   = 255
	maxTimeSlotLength  = 100
	maxNameLength      = 255
	maxPhoneLength     = 20
	priceDecimalPlaces = 2
)

// MaxPrice is the largest price that fits numeric(10,2).
var MaxPrice = decimal.RequireFromString("99999999.99")

// Details are the caller-writable fields of an order: route, pickup window,
// recipient, package and price. References to catalog rows are checked for
// existence by the application layer; Details only checks their shape.
type Details struct {
	PickupAddress     string
	DeliveryAddress   string
	PickupDate        time.Time
	PickupTimeSlot    string
	RecipientName     string
	RecipientPhone    string
	Comment           string
	Price             decimal.Decimal
	PackageSizeID     *kernel.ID
	OriginCityID      kernel.ID
	DestinationCityID kernel.ID
}

// Normalize trims text fields, truncates the pickup date to a calendar day and
// reports every invalid field at once.
func (d Details) Normalize() (Details, error) {
	var (
		out                             = d
		pickupErr, deliveryErr, slotErr error
		nameErr, phoneErr, commentErr   error
	)
	out.PickupAddress, pickupErr = kernel.RequiredText("pickup_address", d.PickupAddress, maxAddressLength)
	out.DeliveryAddress, deliveryErr = kernel.RequiredText("delivery_address", d.DeliveryAddress, maxAddressLength)
	out.PickupTimeSlot, slotErr = kernel.RequiredText("pickup_time_slot", d.PickupTimeSlot, maxTimeSlotLength)
	out.RecipientName, nameErr = kernel.RequiredText("recipient_name", d.RecipientName, maxNameLength)
	out.RecipientPhone, phoneErr = kernel.RequiredText("recipient_phone", d.RecipientPhone, maxPhoneLength)
	out.Comment, commentErr = kernel.OptionalText("comment", d.Comment, 0)

	var dateErr error
	if d.PickupDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("pickup_date")
	} else {
		y, m, day := d.PickupDate.Date()
		out.PickupDate = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}

	var priceErr error
	switch {
	case d.Price.IsNegative() || d.Price.GreaterThan(MaxPrice):
		priceErr = errs.NewValueIsOutOfRangeError("price", d.Price.String(), "0", MaxPrice.String())
	case !d.Price.Equal(d.Price.Round(priceDecimalPlaces)):
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", errors.New("at most two decimal places are allowed"))
	default:
		out.Price = d.Price.Round(priceDecimalPlaces)
	}

	var sizeErr, originErr, destinationErr error
	if d.PackageSizeID != nil && d.PackageSizeID.IsZero() {
		sizeErr = errs.NewValueIsInvalidError("package_size_id")
	}
	if d.OriginCityID.IsZero() {
		originErr = errs.NewValueIsRequiredError("origin_city_id")
	}
	if d.DestinationCityID.IsZero() {
		destinationErr = errs.NewValueIsRequiredError("destination_city_id")
	}

	if err := errors.Join(
		pickupErr, deliveryErr, dateErr, slotErr,
		nameErr, phoneErr, commentErr, priceErr,
		sizeErr, originErr, destinationErr,
	); err != nil {
		return Details{}, err
	}
	return out, nil
}
