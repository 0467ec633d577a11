package identityrepo

import (
	"context"
	"errors"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormIdentityRepository struct {
	db *gorm.DB
}

func NewGormIdentityRepository(db *gorm.DB) *GormIdentityRepository {
	return &GormIdentityRepository{db: db}
}

func (r *GormIdentityRepository) GetUser(ctx context.Context, id kernel.ID) (identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Take(&dto, id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identity.User{}, errs.NewObjectNotFoundError("user", id.Int64())
		}
		return identity.User{}, err
	}
	return userToDomain(dto)
}

func (r *GormIdentityRepository) GetProfile(ctx context.Context, user identity.User) (*identity.Profile, error) {
	var dto ProfileDTO
	err := r.db.WithContext(ctx).
		Table(profileTable(user.Role())).
		Where("user_id = ?", user.ID().Int64()).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // a user without a profile is a valid state
		}
		return nil, err
	}

	p, err := identity.RestoreProfile(kernel.ID(dto.UserID), dto.FullName, user.Phone())
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormIdentityRepository) SaveProfile(ctx context.Context, role identity.Role, profile identity.Profile) error {
	result := r.db.WithContext(ctx).
		Table(profileTable(role)).
		Where("user_id = ?", profile.ID().Int64()).
		Update("full_name", profile.FullName())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("profile", profile.ID().Int64())
	}
	return nil
}
