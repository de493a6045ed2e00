package impl

import (
	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
)

// authorizeCampgroundChange allows the campground's author, or an admin, to modify it.
func authorizeCampgroundChange(actor *entity.Actor, campground *entity.Campground) error {
	if actor == nil {
		return domainerrors.ErrUnauthorized
	}
	if campground.IsAuthoredBy(actor.ID) || actor.IsAdmin() {
		return nil
	}

	return domainerrors.ErrCampgroundOwnershipViolation
}
