package order_test

import (
	"testing"
	"time"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

type statusRows struct {
	processing, inTransit, delivered, cancelled, cancelledChangedMind order.StatusDefinition
}

func newStatusRows(t *testing.T) statusRows {
	t.Helper()
	row := func(id kernel.ID, s order.Status, name string, idx int) order.StatusDefinition {
		d, err := order.RestoreStatusDefinition(id, s, name, "", idx)
		require.NoError(t, err)
		return d
	}
	return statusRows{
		processing:           row(1, order.Processing, "Обработка", 10),
		inTransit:            row(2, order.InTransit, "В пути", 20),
		delivered:            row(3, order.Delivered, "Доставлен", 30),
		cancelled:            row(4, order.Cancelled, "Отменен клиентом", 40),
		cancelledChangedMind: row(5, order.Cancelled, "Отменен — передумал", 41),
	}
}

func clientProfile(t *testing.T, id kernel.ID) identity.Profile {
	t.Helper()
	p, err := identity.RestoreProfile(id, "Aigerim Sadykova", "+77011234567")
	require.NoError(t, err)
	return p
}

func validDetails() order.Details {
	size := kernel.ID(2)
	return order.Details{
		PickupAddress:     "Abay ave 10",
		DeliveryAddress:   "Dostyk st 5",
		PickupDate:        time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC),
		PickupTimeSlot:    "10:00-12:00",
		RecipientName:     "Nurlan",
		RecipientPhone:    "+77017654321",
		Price:             decimal.RequireFromString("1500.00"),
		PackageSizeID:     &size,
		OriginCityID:      1,
		DestinationCityID: 2,
	}
}

// newPersistedOrder returns a Processing order as if it had just been inserted.
func newPersistedOrder(t *testing.T, rows statusRows) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewRandomOrderCode(), clientProfile(t, 11), rows.processing, validDetails(), testNow)
	require.NoError(t, err)
	o.MarkPersisted(100)
	o.ClearDomainEvents()
	return o
}

func ptr[T any](v T) *T { return &v }
