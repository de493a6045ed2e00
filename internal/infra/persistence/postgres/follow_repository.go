package postgres

import (
	"context"

	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/repository"
	"campground/internal/errors"
	"campground/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{
		db: db,
	}
}

// Create persists a new follow relationship.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := &model.FollowModel{
		FollowerID: follow.FollowerID,
		FolloweeID: follow.FolloweeID,
		CreatedAt:  follow.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFollow
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrFollowSelf
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
	}

	follow.CreatedAt = followM.CreatedAt

	return nil
}

// Delete removes a follow relationship.
func (repo *followRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete follow")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFollowNotFound
	}

	return nil
}

// FindFollowers lists everyone following followeeID, oldest follow first.
func (repo *followRepository) FindFollowers(ctx context.Context, followeeID uuid.UUID) ([]*entity.Follow, error) {
	var followModels []*model.FollowModel
	if err := repo.db.WithContext(ctx).
		Where("followee_id = ?", followeeID).
		Order("created_at ASC").
		Find(&followModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find followers")
	}

	follows := make([]*entity.Follow, 0, len(followModels))
	for _, followM := range followModels {
		follows = append(follows, &entity.Follow{
			FollowerID: followM.FollowerID,
			FolloweeID: followM.FolloweeID,
			CreatedAt:  followM.CreatedAt,
		})
	}

	return follows, nil
}

// FindFollowerIDs lists the IDs of everyone following followeeID.
func (repo *followRepository) FindFollowerIDs(ctx context.Context, followeeID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("followee_id = ?", followeeID).
		Order("created_at ASC").
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find follower IDs")
	}

	return ids, nil
}
