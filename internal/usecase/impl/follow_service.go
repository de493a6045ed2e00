package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "campground/internal/delivery/context"
	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/repository"
	"campground/internal/domain/service"
	"campground/internal/errors"
	"campground/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type followService struct {
	followRepo    repository.FollowRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// FollowServiceParams holds dependencies for FollowService, injected by Fx.
type FollowServiceParams struct {
	fx.In

	FollowRepo    repository.FollowRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewFollowService creates a new follow service instance
func NewFollowService(params FollowServiceParams) usecase.FollowUsecase {
	return &followService{
		followRepo:    params.FollowRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (s *followService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Follow subscribes followerID to campgrounds created by followeeID. Following
// someone already followed returns the relationship without error.
func (s *followService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*entity.Follow, error) {
	if followerID == followeeID {
		return nil, domainerrors.ErrFollowSelf
	}

	follow := &entity.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}

	if err := s.followRepo.Create(ctx, follow); err != nil {
		if errors.Is(err, repository.ErrDuplicateFollow) {
			return follow, nil
		}

		return nil, errors.Wrap(err, "failed to create follow")
	}

	s.log(ctx).Info("User followed",
		slog.String("followerID", followerID.String()),
		slog.String("followeeID", followeeID.String()),
	)

	return follow, nil
}

// Unfollow removes the subscription.
func (s *followService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if err := s.followRepo.Delete(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return domainerrors.ErrFollowNotFound
		}

		return errors.Wrap(err, "failed to delete follow")
	}

	return nil
}

// GetFollowers lists everyone following userID.
func (s *followService) GetFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.Follow, error) {
	follows, err := s.followRepo.FindFollowers(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get followers")
	}

	return follows, nil
}

// GenerateFollowQR renders a PNG QR code that lets a scanner follow userID.
func (s *followService) GenerateFollowQR(_ context.Context, userID uuid.UUID) ([]byte, error) {
	png, err := s.qrcodeService.GenerateFollowQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate follow QR code")
	}

	return png, nil
}

// FollowByQR follows the user encoded in scanned QR data.
func (s *followService) FollowByQR(ctx context.Context, followerID uuid.UUID, qrData string) (*entity.Follow, error) {
	followeeID, err := s.qrcodeService.ParseFollowQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidFollowCode.WithDetails(err.Error())
	}

	return s.Follow(ctx, followerID, followeeID)
}
