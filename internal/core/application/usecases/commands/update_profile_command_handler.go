package commands

import (
	"context"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/pkg/errs"
)

type UpdateProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory ProfileUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new name and returns the updated profile. Staff and users
// without a profile are denied.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (identity.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return identity.Profile{}, err
	}

	actor := cmd.Actor()
	var (
		profile identity.Profile
		role    identity.Role
	)
	if p, ok := actor.ClientProfile(); ok {
		profile, role = p, identity.RoleClient
	} else if p, ok = actor.CourierProfile(); ok {
		profile, role = p, identity.RoleCourier
	} else {
		return identity.Profile{}, errs.NewAccessDeniedError("update profile", "caller has no profile")
	}

	renamed, err := profile.Rename(cmd.FullName())
	if err != nil {
		return identity.Profile{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return identity.Profile{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.IdentityRepository().SaveProfile(ctx, role, renamed); err != nil {
		return identity.Profile{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return identity.Profile{}, err
	}
	return renamed, nil
}
