package identity

import "jibekjoly/internal/core/domain/model/kernel"

// Kind discriminates the Actor union.
type Kind int

const (
	// Unprofiled is an authenticated non-staff user whose role has no profile record yet.
	Unprofiled Kind = iota
	Client
	Courier
	Staff
)

func (k Kind) String() string {
	switch k {
	case Client:
		return "client"
	case Courier:
		return "courier"
	case Staff:
		return "staff"
	case Unprofiled:
		return "unprofiled"
	}
	return "unknown"
}

// Actor is the authenticated caller. The profile is only present for Client and Courier.
type Actor struct {
	kind       Kind
	user       User
	profile    Profile
	hasProfile bool
}

// NewActor classifies a user once. Staff wins over the registered role but keeps
// its profile record; a client or courier without a profile record is Unprofiled.
func NewActor(user User, profile *Profile) Actor {
	a := Actor{kind: Unprofiled, user: user}
	if profile != nil {
		a.profile, a.hasProfile = *profile, true
	}

	switch {
	case user.IsStaff():
		a.kind = Staff
	case !a.hasProfile:
	case user.Role() == RoleClient:
		a.kind = Client
	case user.Role() == RoleCourier:
		a.kind = Courier
	}
	return a
}

func (a Actor) Kind() Kind { return a.kind }
func (a Actor) User() User { return a.user }

func (a Actor) IsStaff() bool { return a.kind == Staff }

// ClientProfile returns the profile when the actor is a Client.
func (a Actor) ClientProfile() (Profile, bool) {
	if a.kind != Client {
		return Profile{}, false
	}
	return a.profile, true
}

// CourierProfile returns the profile when the actor is a Courier.
func (a Actor) CourierProfile() (Profile, bool) {
	if a.kind != Courier {
		return Profile{}, false
	}
	return a.profile, true
}

// RoleProfile returns the profile record of the registered role whatever the
// actor kind, so a staff user can still act through its own profile.
func (a Actor) RoleProfile() (Profile, bool) {
	return a.profile, a.hasProfile
}

// IsClient reports whether the actor is the client with the given profile id.
func (a Actor) IsClient(profileID kernel.ID) bool {
	return a.kind == Client && a.profile.ID() == profileID
}

// IsCourier reports whether the actor is the courier with the given profile id.
func (a Actor) IsCourier(profileID kernel.ID) bool {
	return a.kind == Courier && a.profile.ID() == profileID
}
