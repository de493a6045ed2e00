package repository

import (
	"context"

	"campground/internal/domain/entity"
	"campground/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for follow persistence.
var (
	// ErrFollowNotFound is returned when the follow relationship does not exist.
	ErrFollowNotFound = errors.New("follow not found")
	// ErrDuplicateFollow is returned when the follow relationship already exists.
	ErrDuplicateFollow = errors.New("follow already exists")
)

// FollowRepository defines the interface for follower relationships.
type FollowRepository interface {
	// Create persists a new follow relationship.
	Create(ctx context.Context, follow *entity.Follow) error

	// Delete removes a follow relationship.
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error

	// FindFollowers lists the relationships where followeeID is being followed.
	FindFollowers(ctx context.Context, followeeID uuid.UUID) ([]*entity.Follow, error)

	// FindFollowerIDs lists the IDs of everyone following followeeID.
	FindFollowerIDs(ctx context.Context, followeeID uuid.UUID) ([]uuid.UUID, error)
}
