package queries

import (
	"time"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ProfileView is a client or courier as shown next to an order.
type ProfileView struct {
	ID       kernel.ID
	FullName string
	Phone    string
}

type StatusView struct {
	ID          kernel.ID
	Code        order.Status
	Name        string
	Description string
	OrderIndex  int
}

type CityView struct {
	ID              kernel.ID
	Name            string
	CenterLatitude  decimal.NullDecimal
	CenterLongitude decimal.NullDecimal
}

type PackageSizeView struct {
	ID          kernel.ID
	Name        string
	Description string
}

// OrderView is the full representation of an order with its references
// resolved. It satisfies services.AccessSubject, so read checks run against it
// directly.
type OrderView struct {
	ID                  kernel.ID
	Code                string
	Client              ProfileView
	Courier             *ProfileView
	Status              StatusView
	PackageSize         *PackageSizeView
	OriginCity          CityView
	DestinationCity     CityView
	PickupAddress       string
	DeliveryAddress     string
	PickupDate          time.Time
	PickupTimeSlot      string
	RecipientName       string
	RecipientPhone      string
	SenderNameSnapshot  string
	SenderPhoneSnapshot string
	Comment             string
	Price               decimal.Decimal
	PickupTimestamp     *time.Time
	DeliveryTimestamp   *time.Time
	CancellationReason  *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (v OrderView) ClientID() kernel.ID { return v.Client.ID }

func (v OrderView) IsClaimable() bool {
	return v.Courier == nil && v.Status.Code == order.Processing
}

func (v OrderView) IsAssignedTo(courierID kernel.ID) bool {
	return v.Courier != nil && v.Courier.ID == courierID
}

// ChatSessionView is a chat session with the order it belongs to.
type ChatSessionView struct {
	ID        kernel.ID
	OrderID   kernel.ID
	OrderCode string
	CreatedAt time.Time
	UpdatedAt time.Time
}
