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

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// FindByCampground retrieves the campground's comments, newest first.
func (repo *commentRepository) FindByCampground(ctx context.Context, campgroundID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel
	if err := repo.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Order("created_at DESC, id DESC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find comments by campground")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// DeleteByIDs removes the listed comments.
func (repo *commentRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comments")
	}

	return result.RowsAffected, nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:           data.ID,
		CampgroundID: data.CampgroundID,
		Text:         data.Text,
		Author: entity.Author{
			ID:       data.AuthorID,
			Username: data.AuthorUsername,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
