package queries

import (
	"context"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListStatusesQueryHandler struct {
	db *gorm.DB
}

func NewListStatusesQueryHandler(db *gorm.DB) ListStatusesQueryHandler {
	return ListStatusesQueryHandler{db: db}
}

func (h ListStatusesQueryHandler) Handle(ctx context.Context, query ListStatusesQuery) ([]StatusView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, code, name, description, order_index
		FROM order_statuses
		ORDER BY order_index, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]StatusView, 0)
	for rows.Next() {
		var (
			status StatusView
			id     int64
			code   string
		)
		if err = rows.Scan(&id, &code, &status.Name, &status.Description, &status.OrderIndex); err != nil {
			return nil, err
		}
		if status.Code, err = order.ParseStatus(code); err != nil {
			return nil, err
		}
		status.ID = kernel.ID(id)
		statuses = append(statuses, status)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

type ListCitiesQueryHandler struct {
	db *gorm.DB
}

func NewListCitiesQueryHandler(db *gorm.DB) ListCitiesQueryHandler {
	return ListCitiesQueryHandler{db: db}
}

func (h ListCitiesQueryHandler) Handle(ctx context.Context, query ListCitiesQuery) ([]CityView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, center_latitude, center_longitude
		FROM cities
		WHERE is_active
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]CityView, 0)
	for rows.Next() {
		var (
			city CityView
			id   int64
		)
		if err = rows.Scan(&id, &city.Name, &city.CenterLatitude, &city.CenterLongitude); err != nil {
			return nil, err
		}
		city.ID = kernel.ID(id)
		cities = append(cities, city)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cities, nil
}

type ListPackageSizesQueryHandler struct {
	db *gorm.DB
}

func NewListPackageSizesQueryHandler(db *gorm.DB) ListPackageSizesQueryHandler {
	return ListPackageSizesQueryHandler{db: db}
}

func (h ListPackageSizesQueryHandler) Handle(
	ctx context.Context,
	query ListPackageSizesQuery,
) ([]PackageSizeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description
		FROM package_sizes
		WHERE is_active
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := make([]PackageSizeView, 0)
	for rows.Next() {
		var (
			size PackageSizeView
			id   int64
		)
		if err = rows.Scan(&id, &size.Name, &size.Description); err != nil {
			return nil, err
		}
		size.ID = kernel.ID(id)
		sizes = append(sizes, size)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sizes, nil
}
