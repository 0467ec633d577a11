package commands_test

import (
	"testing"

	"jibekjoly/internal/core/application/usecases/commands"
	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name  string
		actor identity.Actor
		role  identity.Role
	}{
		{"client", clientActor(t), identity.RoleClient},
		{"courier", courierActor(t, courierX), identity.RoleCourier},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			uow := new(MockUoW)
			repo := new(MockIdentityRepository)
			factory := new(MockProfileUoWFactory)
			factory.On("Create").Return(uow).Once()

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("IdentityRepository").Return(repo).Once(),
				repo.On("SaveProfile", ctx, tc.role, mock.MatchedBy(func(p identity.Profile) bool {
					return p.FullName() == "Aigerim Sadykova-Bekova"
				})).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			cmd, err := commands.NewUpdateProfileCommand(tc.actor, "  Aigerim Sadykova-Bekova ")
			require.NoError(t, err)

			updated, err := commands.NewUpdateProfileCommandHandler(factory).Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, "Aigerim Sadykova-Bekova", updated.FullName())
			assert.Equal(t, tc.actor.User().ID(), updated.ID())
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateProfileCommandHandler_Handle_NoProfile(t *testing.T) {
	factory := new(MockProfileUoWFactory)
	cmd, err := commands.NewUpdateProfileCommand(newActor(t, identity.RoleCourier, courierY, false), "Someone")
	require.NoError(t, err)

	_, err = commands.NewUpdateProfileCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateProfileCommandHandler_Handle_BlankName(t *testing.T) {
	factory := new(MockProfileUoWFactory)
	cmd, err := commands.NewUpdateProfileCommand(clientActor(t), "    ")
	require.NoError(t, err)

	_, err = commands.NewUpdateProfileCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}
