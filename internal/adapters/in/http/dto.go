package http

import (
	"time"

	"jibekjoly/internal/core/application/usecases/queries"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type Profile struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

type Status struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type City struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	CenterLatitude  *string `json:"center_latitude"`
	CenterLongitude *string `json:"center_longitude"`
}

type PackageSize struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Order struct {
	ID                  int64              `json:"id"`
	UniqueOrderID       string             `json:"unique_order_id"`
	Client              Profile            `json:"client"`
	Courier             *Profile           `json:"courier"`
	Status              Status             `json:"status"`
	PackageSize         *PackageSize       `json:"package_size"`
	OriginCity          City               `json:"origin_city"`
	DestinationCity     City               `json:"destination_city"`
	PickupAddress       string             `json:"pickup_address"`
	DeliveryAddress     string             `json:"delivery_address"`
	PickupDate          openapi_types.Date `json:"pickup_date"`
	PickupTimeSlot      string             `json:"pickup_time_slot"`
	RecipientName       string             `json:"recipient_name"`
	RecipientPhone      string             `json:"recipient_phone"`
	SenderNameSnapshot  string             `json:"sender_name_snapshot"`
	SenderPhoneSnapshot string             `json:"sender_phone_snapshot"`
	Comment             string             `json:"comment"`
	Price               string             `json:"price"`
	PickupTimestamp     *time.Time         `json:"pickup_timestamp"`
	DeliveryTimestamp   *time.Time         `json:"delivery_timestamp"`
	CancellationReason  *string            `json:"cancellation_reason"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

type ChatSession struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"order_id"`
	UniqueOrderID string    `json:"unique_order_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Me struct {
	ID          int64    `json:"id"`
	PhoneNumber string   `json:"phone_number"`
	Role        string   `json:"role"`
	IsStaff     bool     `json:"is_staff"`
	Kind        string   `json:"kind"`
	Profile     *Profile `json:"profile"`
}

type NewOrder struct {
	PickupAddress     string             `json:"pickup_address"`
	DeliveryAddress   string             `json:"delivery_address"`
	PickupDate        openapi_types.Date `json:"pickup_date"`
	PickupTimeSlot    string             `json:"pickup_time_slot"`
	RecipientName     string             `json:"recipient_name"`
	RecipientPhone    string             `json:"recipient_phone"`
	Comment           string             `json:"comment"`
	Price             decimal.Decimal    `json:"price"`
	PackageSizeID     *int64             `json:"package_size_id"`
	OriginCityID      int64              `json:"origin_city_id"`
	DestinationCityID int64              `json:"destination_city_id"`
}

type OrderPatch struct {
	StatusID           *int64              `json:"status_id"`
	PickupAddress      *string             `json:"pickup_address"`
	DeliveryAddress    *string             `json:"delivery_address"`
	PickupDate         *openapi_types.Date `json:"pickup_date"`
	PickupTimeSlot     *string             `json:"pickup_time_slot"`
	RecipientName      *string             `json:"recipient_name"`
	RecipientPhone     *string             `json:"recipient_phone"`
	Comment            *string             `json:"comment"`
	Price              *decimal.Decimal    `json:"price"`
	PackageSizeID      *int64              `json:"package_size_id"`
	OriginCityID       *int64              `json:"origin_city_id"`
	DestinationCityID  *int64              `json:"destination_city_id"`
	CancellationReason *string             `json:"cancellation_reason"`
	UnassignCourier    bool                `json:"unassign_courier"`
}

type ProfilePatch struct {
	FullName string `json:"full_name"`
}

func (o NewOrder) toDomain() order.Details {
	return order.Details{
		PickupAddress:     o.PickupAddress,
		DeliveryAddress:   o.DeliveryAddress,
		PickupDate:        o.PickupDate.Time,
		PickupTimeSlot:    o.PickupTimeSlot,
		RecipientName:     o.RecipientName,
		RecipientPhone:    o.RecipientPhone,
		Comment:           o.Comment,
		Price:             o.Price,
		PackageSizeID:     optionalID(o.PackageSizeID),
		OriginCityID:      kernel.ID(o.OriginCityID),
		DestinationCityID: kernel.ID(o.DestinationCityID),
	}
}

func (p OrderPatch) toDomain() order.Patch {
	patch := order.Patch{
		StatusID:           optionalID(p.StatusID),
		PickupAddress:      p.PickupAddress,
		DeliveryAddress:    p.DeliveryAddress,
		PickupTimeSlot:     p.PickupTimeSlot,
		RecipientName:      p.RecipientName,
		RecipientPhone:     p.RecipientPhone,
		Comment:            p.Comment,
		Price:              p.Price,
		PackageSizeID:      optionalID(p.PackageSizeID),
		OriginCityID:       optionalID(p.OriginCityID),
		DestinationCityID:  optionalID(p.DestinationCityID),
		CancellationReason: p.CancellationReason,
		UnassignCourier:    p.UnassignCourier,
	}
	if p.PickupDate != nil {
		d := p.PickupDate.Time
		patch.PickupDate = &d
	}
	return patch
}

func optionalID(raw *int64) *kernel.ID {
	if raw == nil {
		return nil
	}
	id := kernel.ID(*raw)
	return &id
}

func toOrder(v queries.OrderView) Order {
	resp := Order{
		ID:                  v.ID.Int64(),
		UniqueOrderID:       v.Code,
		Client:              toProfile(v.Client),
		Status:              toStatus(v.Status),
		OriginCity:          toCity(v.OriginCity),
		DestinationCity:     toCity(v.DestinationCity),
		PickupAddress:       v.PickupAddress,
		DeliveryAddress:     v.DeliveryAddress,
		PickupDate:          openapi_types.Date{Time: v.PickupDate},
		PickupTimeSlot:      v.PickupTimeSlot,
		RecipientName:       v.RecipientName,
		RecipientPhone:      v.RecipientPhone,
		SenderNameSnapshot:  v.SenderNameSnapshot,
		SenderPhoneSnapshot: v.SenderPhoneSnapshot,
		Comment:             v.Comment,
		Price:               v.Price.StringFixed(2),
		PickupTimestamp:     v.PickupTimestamp,
		DeliveryTimestamp:   v.DeliveryTimestamp,
		CancellationReason:  v.CancellationReason,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
	if v.Courier != nil {
		courier := toProfile(*v.Courier)
		resp.Courier = &courier
	}
	if v.PackageSize != nil {
		size := toPackageSize(*v.PackageSize)
		resp.PackageSize = &size
	}
	return resp
}

func toOrders(views []queries.OrderView) []Order {
	resp := make([]Order, len(views))
	for i, v := range views {
		resp[i] = toOrder(v)
	}
	return resp
}

func toProfile(v queries.ProfileView) Profile {
	return Profile{ID: v.ID.Int64(), FullName: v.FullName, PhoneNumber: v.Phone}
}

func toStatus(v queries.StatusView) Status {
	return Status{
		ID:          v.ID.Int64(),
		Code:        v.Code.Code(),
		Name:        v.Name,
		Description: v.Description,
		OrderIndex:  v.OrderIndex,
	}
}

func toCity(v queries.CityView) City {
	return City{
		ID:              v.ID.Int64(),
		Name:            v.Name,
		CenterLatitude:  coordinate(v.CenterLatitude),
		CenterLongitude: coordinate(v.CenterLongitude),
	}
}

func coordinate(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

func toPackageSize(v queries.PackageSizeView) PackageSize {
	return PackageSize{ID: v.ID.Int64(), Name: v.Name, Description: v.Description}
}

func toChatSession(v queries.ChatSessionView) ChatSession {
	return ChatSession{
		ID:            v.ID.Int64(),
		OrderID:       v.OrderID.Int64(),
		UniqueOrderID: v.OrderCode,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toMe(v queries.MeView) Me {
	me := Me{
		ID:          v.ID.Int64(),
		PhoneNumber: v.Phone,
		Role:        string(v.Role),
		IsStaff:     v.IsStaff,
		Kind:        v.Kind.String(),
	}
	if v.Profile != nil {
		p := toProfile(*v.Profile)
		me.Profile = &p
	}
	return me
}
