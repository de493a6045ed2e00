package impl

import (
	"testing"

	"campground/internal/domain/constants"
	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeCampgroundChange(t *testing.T) {
	author := &entity.Actor{ID: uuid.New(), Username: "owner"}
	campground := &entity.Campground{ID: uuid.New(), Author: author.AsAuthor()}

	tests := []struct {
		name  string
		actor *entity.Actor
		want  error
	}{
		{name: "author", actor: author},
		{name: "admin", actor: &entity.Actor{ID: uuid.New(), Roles: []string{constants.RoleAdmin}}},
		{name: "other user", actor: &entity.Actor{ID: uuid.New(), Roles: []string{constants.RoleUser}}, want: domainerrors.ErrCampgroundOwnershipViolation},
		{name: "anonymous", actor: nil, want: domainerrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizeCampgroundChange(tt.actor, campground)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
