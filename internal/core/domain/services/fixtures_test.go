package services_test

import (
	"testing"
	"time"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	ownerID         kernel.ID = 11
	otherClientID   kernel.ID = 12
	assignedID      kernel.ID = 21
	otherCourierID  kernel.ID = 22
	staffUserID     kernel.ID = 90
	unprofiledID    kernel.ID = 91
	processingID    kernel.ID = 1
	inTransitID     kernel.ID = 2
	deliveredID     kernel.ID = 3
	cancelledID     kernel.ID = 4
	changedMindID   kernel.ID = 5
	missingStatusID kernel.ID = 404
)

var testNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func statusCatalog(t *testing.T) order.StatusCatalog {
	t.Helper()
	return order.NewStatusCatalog([]order.StatusDefinition{
		statusRow(t, processingID),
		statusRow(t, inTransitID),
		statusRow(t, deliveredID),
		statusRow(t, cancelledID),
		statusRow(t, changedMindID),
	})
}

func statusRow(t *testing.T, id kernel.ID) order.StatusDefinition {
	t.Helper()
	rows := map[kernel.ID]struct {
		status order.Status
		name   string
	}{
		processingID:  {order.Processing, "Обработка"},
		inTransitID:   {order.InTransit, "В пути"},
		deliveredID:   {order.Delivered, "Доставлен"},
		cancelledID:   {order.Cancelled, "Отменен клиентом"},
		changedMindID: {order.Cancelled, "Отменен — передумал"},
	}
	r := rows[id]
	d, err := order.RestoreStatusDefinition(id, r.status, r.name, "", int(id)*10)
	require.NoError(t, err)
	return d
}

func actor(t *testing.T, kind identity.Kind, id kernel.ID) identity.Actor {
	t.Helper()
	role := identity.RoleClient
	if kind == identity.Courier {
		role = identity.RoleCourier
	}
	user, err := identity.RestoreUser(id, "+7700000000", role, kind == identity.Staff)
	require.NoError(t, err)
	if kind == identity.Unprofiled || kind == identity.Staff {
		return identity.NewActor(user, nil)
	}
	p, err := identity.RestoreProfile(id, "Profile", "+7700000000")
	require.NoError(t, err)
	return identity.NewActor(user, &p)
}

// orderIn restores an order with the given status row and courier.
func orderIn(t *testing.T, statusID kernel.ID, courier *kernel.ID) *order.Order {
	t.Helper()
	code, err := kernel.OrderCodeFromString("ORDER0000001")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.State{
		ID:        100,
		Code:      code,
		ClientID:  ownerID,
		CourierID: courier,
		Status:    statusRow(t, statusID),
		Details: order.Details{
			PickupAddress:     "Abay ave 10",
			DeliveryAddress:   "Dostyk st 5",
			PickupDate:        time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC),
			PickupTimeSlot:    "10:00-12:00",
			RecipientName:     "Nurlan",
			RecipientPhone:    "+77017654321",
			Price:             decimal.NewFromInt(1500),
			OriginCityID:      1,
			DestinationCityID: 2,
		},
		SenderNameSnapshot:  "Aigerim",
		SenderPhoneSnapshot: "+77011234567",
		CreatedAt:           testNow,
		UpdatedAt:           testNow,
		Version:             1,
	})
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T { return &v }
