package repository

import (
	"context"

	"campground/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// FindByCampground retrieves reviews attached to a campground, newest first.
	FindByCampground(ctx context.Context, campgroundID uuid.UUID) ([]*entity.Review, error)

	// DeleteByIDs removes the listed reviews and returns how many were removed.
	// Identifiers that no longer exist are ignored.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
