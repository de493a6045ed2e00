package repository

import (
	"context"

	"campground/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	// FindByCampground retrieves comments attached to a campground, newest first.
	FindByCampground(ctx context.Context, campgroundID uuid.UUID) ([]*entity.Comment, error)

	// DeleteByIDs removes the listed comments and returns how many were removed.
	// Identifiers that no longer exist are ignored.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
