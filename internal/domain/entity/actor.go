package entity

import (
	"slices"

	"campground/internal/domain/constants"

	"github.com/google/uuid"
)

// Actor is the authenticated user performing a request, as asserted by the access token.
type Actor struct {
	ID       uuid.UUID
	Username string
	Roles    []string
}

// HasRole reports whether the actor carries role.
func (a *Actor) HasRole(role string) bool {
	return a != nil && slices.Contains(a.Roles, role)
}

// IsAdmin reports whether the actor may bypass ownership checks.
func (a *Actor) IsAdmin() bool {
	return a.HasRole(constants.RoleAdmin)
}

// AsAuthor returns the author reference recorded on records the actor creates.
func (a *Actor) AsAuthor() Author {
	return Author{ID: a.ID, Username: a.Username}
}
