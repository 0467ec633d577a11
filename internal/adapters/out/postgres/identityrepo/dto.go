// Package identityrepo reads users with their profiles and stores profile renames.
package identityrepo

import (
	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
)

type UserDTO struct {
	ID          int64 `gorm:"primaryKey"`
	PhoneNumber string
	Role        string
	IsStaff     bool
}

func (UserDTO) TableName() string {
	return "users"
}

// ProfileDTO maps both client_profiles and courier_profiles; the table is
// chosen per query from the user's role.
type ProfileDTO struct {
	UserID   int64 `gorm:"primaryKey"`
	FullName string
}

func profileTable(role identity.Role) string {
	if role == identity.RoleCourier {
		return "courier_profiles"
	}
	return "client_profiles"
}

func userToDomain(dto UserDTO) (identity.User, error) {
	return identity.RestoreUser(kernel.ID(dto.ID), dto.PhoneNumber, identity.Role(dto.Role), dto.IsStaff)
}
