package identity

import (
	"errors"

	"jibekjoly/internal/core/domain/model/kernel"
)

const maxFullNameLength = 255

// Profile is the client or courier profile attached to a user. Its identifier is
// the owning user's identifier.
type Profile struct {
	userID   kernel.ID
	fullName string
	phone    string
}

// RestoreProfile rebuilds a profile read from storage. The phone is the owning
// user's login phone.
func RestoreProfile(userID kernel.ID, fullName, phone string) (Profile, error) {
	p := Profile{userID: userID, phone: phone}
	if err := errors.Join(
		validateUserID(userID),
		p.setFullName(fullName),
	); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p Profile) ID() kernel.ID    { return p.userID }
func (p Profile) FullName() string { return p.fullName }
func (p Profile) Phone() string    { return p.phone }

// Rename returns a copy of the profile with a new full name.
func (p Profile) Rename(fullName string) (Profile, error) {
	if err := p.setFullName(fullName); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p *Profile) setFullName(fullName string) error {
	name, err := kernel.RequiredText("full_name", fullName, maxFullNameLength)
	if err != nil {
		return err
	}
	p.fullName = name
	return nil
}
