package commands_test

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

func fixedClock() time.Time { return testNow }

const (
	ownerID      kernel.ID = 11
	courierX     kernel.ID = 21
	courierY     kernel.ID = 22
	processingID kernel.ID = 1
	inTransitID  kernel.ID = 2
	deliveredID  kernel.ID = 3
	cancelledID  kernel.ID = 4
	changedMind  kernel.ID = 5
)

func statusDefinitions(t *testing.T) map[kernel.ID]order.StatusDefinition {
	t.Helper()
	rows := map[kernel.ID]order.StatusDefinition{}
	for _, r := range []struct {
		id     kernel.ID
		status order.Status
		name   string
	}{
		{processingID, order.Processing, "Обработка"},
		{inTransitID, order.InTransit, "В пути"},
		{deliveredID, order.Delivered, "Доставлен"},
		{cancelledID, order.Cancelled, "Отменен клиентом"},
		{changedMind, order.Cancelled, "Отменен — передумал"},
	} {
		d, err := order.RestoreStatusDefinition(r.id, r.status, r.name, "", int(r.id))
		require.NoError(t, err)
		rows[r.id] = d
	}
	return rows
}

func statusCatalog(t *testing.T) order.StatusCatalog {
	t.Helper()
	rows := statusDefinitions(t)
	defs := make([]order.StatusDefinition, 0, len(rows))
	for _, d := range rows {
		defs = append(defs, d)
	}
	return order.NewStatusCatalog(defs)
}

func newActor(t *testing.T, role identity.Role, id kernel.ID, withProfile bool) identity.Actor {
	t.Helper()
	user, err := identity.RestoreUser(id, "+77011234567", role, false)
	require.NoError(t, err)
	if !withProfile {
		return identity.NewActor(user, nil)
	}
	p, err := identity.RestoreProfile(id, "Aigerim Sadykova", "+77011234567")
	require.NoError(t, err)
	return identity.NewActor(user, &p)
}

func clientActor(t *testing.T) identity.Actor {
	return newActor(t, identity.RoleClient, ownerID, true)
}

func courierActor(t *testing.T, id kernel.ID) identity.Actor {
	return newActor(t, identity.RoleCourier, id, true)
}

func validDetails() order.Details {
	return order.Details{
		PickupAddress:     "Abay ave 10",
		DeliveryAddress:   "Dostyk st 5",
		PickupDate:        time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC),
		PickupTimeSlot:    "10:00-12:00",
		RecipientName:     "Nurlan",
		RecipientPhone:    "+77017654321",
		Price:             decimal.RequireFromString("1500.00"),
		OriginCityID:      1,
		DestinationCityID: 2,
	}
}

func storedOrder(t *testing.T, statusID kernel.ID, courier *kernel.ID) *order.Order {
	t.Helper()
	code, err := kernel.OrderCodeFromString("AB12CD34EF56")
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.State{
		ID:                  100,
		Code:                code,
		ClientID:            ownerID,
		CourierID:           courier,
		Status:              statusDefinitions(t)[statusID],
		Details:             validDetails(),
		SenderNameSnapshot:  "Aigerim Sadykova",
		SenderPhoneSnapshot: "+77011234567",
		CreatedAt:           testNow.Add(-time.Hour),
		UpdatedAt:           testNow.Add(-time.Hour),
		Version:             1,
	})
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T { return &v }
