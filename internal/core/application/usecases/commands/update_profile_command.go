package commands

import (
	"errors"
	"strings"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/pkg/errs"
	"jibekjoly/internal/pkg/guard"
)

var (
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full_name")
)

// UpdateProfileCommand renames the caller's own profile. Orders placed earlier
// keep their sender snapshot.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	fullName string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(actor identity.Actor, fullName string) (UpdateProfileCommand, error) {
	if strings.TrimSpace(fullName) == "" {
		return UpdateProfileCommand{}, ErrFullNameIsRequired
	}
	return UpdateProfileCommand{
		actor:    actor,
		fullName: fullName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Actor() identity.Actor { return c.actor }
func (c UpdateProfileCommand) FullName() string      { return c.fullName }
