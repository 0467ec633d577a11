package queries

import (
	"errors"

	"jibekjoly/internal/pkg/guard"
)

var (
	ErrListStatusesQueryIsNotConstructed = errors.New(
		"ListStatusesQuery must be created via NewListStatusesQuery constructor",
	)
	ErrListCitiesQueryIsNotConstructed = errors.New(
		"ListCitiesQuery must be created via NewListCitiesQuery constructor",
	)
	ErrListPackageSizesQueryIsNotConstructed = errors.New(
		"ListPackageSizesQuery must be created via NewListPackageSizesQuery constructor",
	)
)

// ListStatusesQuery lists the order status definitions in display order.
type ListStatusesQuery struct {
	guard guard.ConstructorGuard
}

func NewListStatusesQuery() ListStatusesQuery {
	return ListStatusesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListStatusesQueryIsNotConstructed)
}

// ListCitiesQuery lists the cities orders can be placed between. Inactive
// cities are hidden.
type ListCitiesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCitiesQuery() ListCitiesQuery {
	return ListCitiesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCitiesQuery) Validate() error {
	return q.guard.Validate(ErrListCitiesQueryIsNotConstructed)
}

// ListPackageSizesQuery lists the active package sizes.
type ListPackageSizesQuery struct {
	guard guard.ConstructorGuard
}

func NewListPackageSizesQuery() ListPackageSizesQuery {
	return ListPackageSizesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPackageSizesQuery) Validate() error {
	return q.guard.Validate(ErrListPackageSizesQueryIsNotConstructed)
}
