// Package catalogrepo answers existence checks against cities and package sizes.
package catalogrepo

import (
	"context"

	"jibekjoly/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) CityExists(ctx context.Context, id kernel.ID) (bool, error) {
	return r.exists(ctx, "cities", id)
}

func (r *GormCatalogRepository) PackageSizeExists(ctx context.Context, id kernel.ID) (bool, error) {
	return r.exists(ctx, "package_sizes", id)
}

func (r *GormCatalogRepository) exists(ctx context.Context, table string, id kernel.ID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Where("id = ?", id.Int64()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
