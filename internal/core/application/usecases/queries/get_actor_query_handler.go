package queries

import (
	"context"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/ports"
	"jibekjoly/internal/pkg/errs"
)

// GetActorQueryHandler classifies an authenticated user. The transport calls it
// once per request, with the user id taken from the verified token.
type GetActorQueryHandler struct {
	users ports.IdentityRepository
}

func NewGetActorQueryHandler(users ports.IdentityRepository) GetActorQueryHandler {
	return GetActorQueryHandler{users: users}
}

// Handle returns errs.ObjectNotFoundError when the user does not exist.
func (h GetActorQueryHandler) Handle(ctx context.Context, userID kernel.ID) (identity.Actor, error) {
	if err := requireUserID(userID); err != nil {
		return identity.Actor{}, err
	}

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		return identity.Actor{}, err
	}

	profile, err := h.users.GetProfile(ctx, user)
	if err != nil {
		return identity.Actor{}, err
	}

	return identity.NewActor(user, profile), nil
}

func requireUserID(id kernel.ID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("user_id")
	}
	return nil
}
