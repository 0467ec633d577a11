package ports

import (
	"context"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
)

// IdentityRepository reads users and their profiles, and stores profile renames.
type IdentityRepository interface {
	// GetUser returns errs.ObjectNotFoundError for an unknown user.
	GetUser(ctx context.Context, id kernel.ID) (identity.User, error)

	// GetProfile returns the profile matching the user's role, or nil when the
	// user has none.
	GetProfile(ctx context.Context, user identity.User) (*identity.Profile, error)

	// SaveProfile stores a changed profile of the given role.
	SaveProfile(ctx context.Context, role identity.Role, profile identity.Profile) error
}
