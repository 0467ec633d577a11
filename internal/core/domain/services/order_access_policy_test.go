package services_test

import (
	"testing"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/services"
	"jibekjoly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAccessPolicy_CanRead(t *testing.T) {
	policy := services.NewOrderAccessPolicy()
	assigned := ptr(assignedID)

	testCases := []struct {
		name      string
		actor     identity.Actor
		statusID  kernel.ID
		courierID *kernel.ID
		want      bool
	}{
		{"staff", actor(t, identity.Staff, staffUserID), deliveredID, assigned, true},
		{"owner", actor(t, identity.Client, ownerID), cancelledID, nil, true},
		{"other client", actor(t, identity.Client, otherClientID), processingID, nil, false},
		{"assigned courier", actor(t, identity.Courier, assignedID), deliveredID, assigned, true},
		{"any courier on claimable order", actor(t, identity.Courier, otherCourierID), processingID, nil, true},
		{"other courier on claimed order", actor(t, identity.Courier, otherCourierID), inTransitID, assigned, false},
		{"any courier on cancelled unassigned order", actor(t, identity.Courier, otherCourierID), cancelledID, nil, false},
		{"unprofiled", actor(t, identity.Unprofiled, unprofiledID), processingID, nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := orderIn(t, tc.statusID, tc.courierID)
			assert.Equal(t, tc.want, policy.CanRead(tc.actor, o))
		})
	}
}

func TestOrderAccessPolicy_CanViewChat(t *testing.T) {
	policy := services.NewOrderAccessPolicy()
	o := orderIn(t, inTransitID, ptr(assignedID))

	assert.True(t, policy.CanViewChat(actor(t, identity.Staff, staffUserID), o))
	assert.True(t, policy.CanViewChat(actor(t, identity.Client, ownerID), o))
	assert.True(t, policy.CanViewChat(actor(t, identity.Courier, assignedID), o))
	assert.False(t, policy.CanViewChat(actor(t, identity.Courier, otherCourierID), o))
	assert.False(t, policy.CanViewChat(actor(t, identity.Client, otherClientID), o))

	claimable := orderIn(t, processingID, nil)
	assert.False(t, policy.CanViewChat(actor(t, identity.Courier, otherCourierID), claimable))
}

func TestOrderAccessPolicy_ResolveUpdate(t *testing.T) {
	policy := services.NewOrderAccessPolicy()
	assigned := ptr(assignedID)

	testCases := []struct {
		name      string
		actor     identity.Actor
		statusID  kernel.ID
		courierID *kernel.ID
		want      services.UpdatePath
	}{
		{"staff wins", actor(t, identity.Staff, staffUserID), processingID, nil, services.PathStaff},
		{"courier on claimable order", actor(t, identity.Courier, otherCourierID), processingID, nil, services.PathClaim},
		{"assigned courier", actor(t, identity.Courier, assignedID), inTransitID, assigned, services.PathAssignedCourier},
		{"other courier on claimed order", actor(t, identity.Courier, otherCourierID), inTransitID, assigned, services.PathDenied},
		{"courier on assigned processing order", actor(t, identity.Courier, otherCourierID), processingID, assigned, services.PathDenied},
		{"owner", actor(t, identity.Client, ownerID), inTransitID, assigned, services.PathOwnerCancel},
		{"other client", actor(t, identity.Client, otherClientID), processingID, nil, services.PathDenied},
		{"unprofiled", actor(t, identity.Unprofiled, unprofiledID), processingID, nil, services.PathDenied},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := orderIn(t, tc.statusID, tc.courierID)
			assert.Equal(t, tc.want, policy.ResolveUpdate(tc.actor, o))
		})
	}
}

func TestOrderAccessPolicy_PlacingClient(t *testing.T) {
	policy := services.NewOrderAccessPolicy()

	p, err := policy.PlacingClient(actor(t, identity.Client, ownerID))
	require.NoError(t, err)
	assert.Equal(t, ownerID, p.ID())

	for _, kind := range []identity.Kind{identity.Courier, identity.Staff, identity.Unprofiled} {
		_, err = policy.PlacingClient(actor(t, kind, 50))
		require.ErrorIs(t, err, errs.ErrAccessDenied, kind.String())
	}

	t.Run("staff with a client profile places as that client", func(t *testing.T) {
		user, err := identity.RestoreUser(60, "+7700000060", identity.RoleClient, true)
		require.NoError(t, err)
		profile, err := identity.RestoreProfile(60, "Staff Client", "+7700000060")
		require.NoError(t, err)
		staff := identity.NewActor(user, &profile)
		require.True(t, staff.IsStaff())

		p, err := policy.PlacingClient(staff)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(60), p.ID())
	})

	t.Run("staff with a courier profile may not", func(t *testing.T) {
		user, err := identity.RestoreUser(61, "+7700000061", identity.RoleCourier, true)
		require.NoError(t, err)
		profile, err := identity.RestoreProfile(61, "Staff Courier", "+7700000061")
		require.NoError(t, err)

		_, err = policy.PlacingClient(identity.NewActor(user, &profile))
		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})
}
