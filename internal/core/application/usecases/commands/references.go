package commands

import (
	"context"
	"errors"
	"fmt"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/core/ports"
	"jibekjoly/internal/pkg/errs"
)

// checkReferences verifies that every catalog row the patch points at exists.
// Each dangling reference is reported as a validation error naming its field.
func checkReferences(ctx context.Context, catalog ports.CatalogRepository, p order.Patch) error {
	checks := []struct {
		field  string
		noun   string
		id     *kernel.ID
		exists func(context.Context, kernel.ID) (bool, error)
	}{
		{"package_size_id", "package size", p.PackageSizeID, catalog.PackageSizeExists},
		{"origin_city_id", "city", p.OriginCityID, catalog.CityExists},
		{"destination_city_id", "city", p.DestinationCityID, catalog.CityExists},
	}

	var invalid []error
	for _, c := range checks {
		if c.id == nil {
			continue
		}
		ok, err := c.exists(ctx, *c.id)
		if err != nil {
			return err
		}
		if !ok {
			invalid = append(invalid, errs.NewValueIsInvalidErrorWithCause(
				c.field,
				fmt.Errorf("%s %d does not exist", c.noun, *c.id),
			))
		}
	}
	return errors.Join(invalid...)
}

func detailReferences(d order.Details) order.Patch {
	origin, destination := d.OriginCityID, d.DestinationCityID
	return order.Patch{
		PackageSizeID:     d.PackageSizeID,
		OriginCityID:      &origin,
		DestinationCityID: &destination,
	}
}
