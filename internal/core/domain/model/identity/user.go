package identity

import (
	"errors"
	"fmt"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"
)

// Role is the role a user registered with.
type Role string

const (
	RoleClient  Role = "client"
	RoleCourier Role = "courier"
)

func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleCourier:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
}

// User is an account as seen by this service.
type User struct {
	id      kernel.ID
	phone   string
	role    Role
	isStaff bool
}

// RestoreUser rebuilds a user read from storage.
func RestoreUser(id kernel.ID, phone string, role Role, isStaff bool) (User, error) {
	if err := errors.Join(
		validateUserID(id),
		role.Validate(),
	); err != nil {
		return User{}, err
	}
	return User{id: id, phone: phone, role: role, isStaff: isStaff}, nil
}

func (u User) ID() kernel.ID { return u.id }
func (u User) Phone() string { return u.phone }
func (u User) Role() Role    { return u.role }
func (u User) IsStaff() bool { return u.isStaff }
func (u User) IsZero() bool  { return u.id.IsZero() }

func validateUserID(id kernel.ID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("user_id")
	}
	return nil
}
