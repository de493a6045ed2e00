package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/repository"
	"campground/internal/errors"
	mockRepo "campground/internal/mocks/repository"
	mockSvc "campground/internal/mocks/service"
	"campground/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFollowService(t *testing.T) (usecase.FollowUsecase, *mockRepo.MockFollowRepository, *mockSvc.MockQRCodeService) {
	followRepo := mockRepo.NewMockFollowRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	svc := NewFollowService(FollowServiceParams{
		FollowRepo:    followRepo,
		QRCodeService: qrcodeService,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, followRepo, qrcodeService
}

func TestFollowService_Follow(t *testing.T) {
	svc, followRepo, _ := createTestFollowService(t)
	ctx := context.Background()
	followerID, followeeID := uuid.New(), uuid.New()

	followRepo.EXPECT().Create(ctx, mock.MatchedBy(func(f *entity.Follow) bool {
		return f.FollowerID == followerID && f.FolloweeID == followeeID
	})).Return(nil)

	follow, err := svc.Follow(ctx, followerID, followeeID)

	require.NoError(t, err)
	assert.Equal(t, followeeID, follow.FolloweeID)
}

func TestFollowService_Follow_RepeatIsNoOp(t *testing.T) {
	svc, followRepo, _ := createTestFollowService(t)
	ctx := context.Background()

	followRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateFollow)

	follow, err := svc.Follow(ctx, uuid.New(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, follow)
}

func TestFollowService_Follow_Self(t *testing.T) {
	svc, _, _ := createTestFollowService(t)
	id := uuid.New()

	_, err := svc.Follow(context.Background(), id, id)

	assert.ErrorIs(t, err, domainerrors.ErrFollowSelf)
}

func TestFollowService_Unfollow_NotFollowing(t *testing.T) {
	svc, followRepo, _ := createTestFollowService(t)
	ctx := context.Background()
	followerID, followeeID := uuid.New(), uuid.New()

	followRepo.EXPECT().Delete(ctx, followerID, followeeID).Return(repository.ErrFollowNotFound)

	err := svc.Unfollow(ctx, followerID, followeeID)

	assert.ErrorIs(t, err, domainerrors.ErrFollowNotFound)
}

func TestFollowService_GetFollowers(t *testing.T) {
	svc, followRepo, _ := createTestFollowService(t)
	ctx := context.Background()
	userID := uuid.New()
	follows := []*entity.Follow{{FollowerID: uuid.New(), FolloweeID: userID}}

	followRepo.EXPECT().FindFollowers(ctx, userID).Return(follows, nil)

	got, err := svc.GetFollowers(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, follows, got)
}

func TestFollowService_FollowByQR(t *testing.T) {
	svc, followRepo, qrcodeService := createTestFollowService(t)
	ctx := context.Background()
	followerID, followeeID := uuid.New(), uuid.New()

	qrcodeService.EXPECT().ParseFollowQR("payload").Return(followeeID, nil)
	followRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	follow, err := svc.FollowByQR(ctx, followerID, "payload")

	require.NoError(t, err)
	assert.Equal(t, followeeID, follow.FolloweeID)
}

func TestFollowService_FollowByQR_InvalidPayload(t *testing.T) {
	svc, _, qrcodeService := createTestFollowService(t)

	qrcodeService.EXPECT().ParseFollowQR("garbage").Return(uuid.Nil, errors.New("invalid QR code format"))

	_, err := svc.FollowByQR(context.Background(), uuid.New(), "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidFollowCode)
}

func TestFollowService_GenerateFollowQR(t *testing.T) {
	svc, _, qrcodeService := createTestFollowService(t)
	userID := uuid.New()

	qrcodeService.EXPECT().GenerateFollowQR(userID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.GenerateFollowQR(context.Background(), userID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
