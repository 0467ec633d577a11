package queries

import (
	"context"
	"database/sql"
	"time"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// selectOrders resolves every reference of an order in one pass. Callers append
// their own WHERE and ORDER BY.
const selectOrders = `
	SELECT
		o.id,
		o.unique_order_id,
		o.client_id,
		cp.full_name,
		cu.phone_number,
		o.courier_id,
		kp.full_name,
		ku.phone_number,
		s.id,
		s.code,
		s.name,
		s.description,
		s.order_index,
		ps.id,
		ps.name,
		ps.description,
		oc.id,
		oc.name,
		oc.center_latitude,
		oc.center_longitude,
		dc.id,
		dc.name,
		dc.center_latitude,
		dc.center_longitude,
		o.pickup_address,
		o.delivery_address,
		o.pickup_date,
		o.pickup_time_slot,
		o.recipient_name,
		o.recipient_phone,
		o.sender_name_snapshot,
		o.sender_phone_snapshot,
		o.comment,
		o.price,
		o.pickup_timestamp,
		o.delivery_timestamp,
		o.cancellation_reason,
		o.created_at,
		o.updated_at
	FROM orders o
	JOIN client_profiles cp ON cp.user_id = o.client_id
	JOIN users cu ON cu.id = cp.user_id
	LEFT JOIN courier_profiles kp ON kp.user_id = o.courier_id
	LEFT JOIN users ku ON ku.id = kp.user_id
	JOIN order_statuses s ON s.id = o.status_id
	LEFT JOIN package_sizes ps ON ps.id = o.package_size_id
	JOIN cities oc ON oc.id = o.origin_city_id
	JOIN cities dc ON dc.id = o.destination_city_id
`

const newestFirst = " ORDER BY o.created_at DESC, o.id DESC"

func queryOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(selectOrders+where+newestFirst, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func scanOrder(rows *sql.Rows) (OrderView, error) {
	var (
		view                      OrderView
		id, clientID, statusID    int64
		originID, destinationID   int64
		statusCode                string
		courierID, packageSizeID  *int64
		courierName, courierPhone *string
		packageName, packageDesc  *string
	)

	err := rows.Scan(
		&id,
		&view.Code,
		&clientID,
		&view.Client.FullName,
		&view.Client.Phone,
		&courierID,
		&courierName,
		&courierPhone,
		&statusID,
		&statusCode,
		&view.Status.Name,
		&view.Status.Description,
		&view.Status.OrderIndex,
		&packageSizeID,
		&packageName,
		&packageDesc,
		&originID,
		&view.OriginCity.Name,
		&view.OriginCity.CenterLatitude,
		&view.OriginCity.CenterLongitude,
		&destinationID,
		&view.DestinationCity.Name,
		&view.DestinationCity.CenterLatitude,
		&view.DestinationCity.CenterLongitude,
		&view.PickupAddress,
		&view.DeliveryAddress,
		&view.PickupDate,
		&view.PickupTimeSlot,
		&view.RecipientName,
		&view.RecipientPhone,
		&view.SenderNameSnapshot,
		&view.SenderPhoneSnapshot,
		&view.Comment,
		&view.Price,
		&view.PickupTimestamp,
		&view.DeliveryTimestamp,
		&view.CancellationReason,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	code, err := order.ParseStatus(statusCode)
	if err != nil {
		return OrderView{}, err
	}

	view.ID = kernel.ID(id)
	view.Client.ID = kernel.ID(clientID)
	view.Status.ID = kernel.ID(statusID)
	view.Status.Code = code
	view.OriginCity.ID = kernel.ID(originID)
	view.DestinationCity.ID = kernel.ID(destinationID)
	view.PickupDate = dateOnly(view.PickupDate)

	if courierID != nil && courierName != nil {
		view.Courier = &ProfileView{
			ID:       kernel.ID(*courierID),
			FullName: *courierName,
			Phone:    deref(courierPhone),
		}
	}
	if packageSizeID != nil {
		view.PackageSize = &PackageSizeView{
			ID:          kernel.ID(*packageSizeID),
			Name:        deref(packageName),
			Description: deref(packageDesc),
		}
	}

	return view, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// emptyOrders is what callers without a matching role get instead of an error.
func emptyOrders() []OrderView {
	return make([]OrderView, 0)
}
