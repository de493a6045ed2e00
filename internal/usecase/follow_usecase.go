package usecase

import (
	"context"

	"campground/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowUsecase defines the interface for follower management use cases
type FollowUsecase interface {
	// Follow subscribes followerID to campgrounds created by followeeID; repeating it is a no-op
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*entity.Follow, error)

	// Unfollow removes the subscription
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// GetFollowers lists everyone following userID
	GetFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.Follow, error)

	// GenerateFollowQR renders a QR code that lets a scanner follow userID
	GenerateFollowQR(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// FollowByQR follows the user encoded in scanned QR data
	FollowByQR(ctx context.Context, followerID uuid.UUID, qrData string) (*entity.Follow, error)
}
