package postgres

import (
	"context"
	"time"

	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/repository"
	"campground/internal/errors"
	"campground/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const campgroundColumns = "campgrounds.*, " +
	"(SELECT COALESCE(AVG(reviews.rating), 0) FROM reviews WHERE reviews.campground_id = campgrounds.id) AS rating"

// campgroundRepository implements the repository.CampgroundRepository interface.
type campgroundRepository struct {
	db *gorm.DB
}

// NewCampgroundRepository is the constructor for campgroundRepository.
func NewCampgroundRepository(db *gorm.DB) repository.CampgroundRepository {
	return &campgroundRepository{
		db: db,
	}
}

// Create persists a new campground.
func (repo *campgroundRepository) Create(ctx context.Context, campground *entity.Campground) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate campground ID")
	}
	campground.ID = id

	campgroundM := fromCampgroundDomain(campground)
	if err := repo.db.WithContext(ctx).Create(campgroundM).Error; err != nil {
		if isColumnViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("campground violates a column constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campground")
	}

	campground.CreatedAt = campgroundM.CreatedAt
	campground.UpdatedAt = campgroundM.UpdatedAt
	campground.CommentIDs = []uuid.UUID{}
	campground.ReviewIDs = []uuid.UUID{}
	campground.Rating = 0

	return nil
}

// FindByID retrieves a campground with its dependent references and derived rating.
func (repo *campgroundRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campground, error) {
	return repo.findByID(ctx, repo.db, id)
}

func (repo *campgroundRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Campground, error) {
	var rows []*model.CampgroundRow
	if err := db.WithContext(ctx).
		Table("campgrounds").
		Select(campgroundColumns).
		Where("campgrounds.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find campground by ID")
	}
	if len(rows) == 0 {
		return nil, repository.ErrCampgroundNotFound
	}

	campground := toCampgroundDomain(rows[0])

	var err error
	if campground.CommentIDs, err = pluckDependentIDs(ctx, db, &model.CommentModel{}, id); err != nil {
		return nil, errors.Wrap(err, "failed to load comment references")
	}
	if campground.ReviewIDs, err = pluckDependentIDs(ctx, db, &model.ReviewModel{}, id); err != nil {
		return nil, errors.Wrap(err, "failed to load review references")
	}

	return campground, nil
}

// FindCampgrounds returns one page of campgrounds in creation order plus the total match count.
func (repo *campgroundRepository) FindCampgrounds(ctx context.Context, filter repository.CampgroundFilter, page, pageSize int) ([]*entity.Campground, int64, error) {
	query := repo.db.WithContext(ctx).
		Table("campgrounds").
		Scopes(campgroundNameFilter(filter)).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count campgrounds")
	}
	if total == 0 {
		return []*entity.Campground{}, 0, nil
	}

	if page < 1 {
		page = 1
	}
	if pageBeyondLast(page, pageSize, total) {
		return []*entity.Campground{}, total, nil
	}

	var rows []*model.CampgroundRow
	if err := query.
		Select(campgroundColumns).
		Order("campgrounds.created_at ASC, campgrounds.id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find campgrounds")
	}

	campgrounds := make([]*entity.Campground, 0, len(rows))
	for _, row := range rows {
		campgrounds = append(campgrounds, toCampgroundDomain(row))
	}

	return campgrounds, total, nil
}

// campgroundNameFilter narrows a query with a case-insensitive POSIX match on the name.
func campgroundNameFilter(filter repository.CampgroundFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.NamePattern == "" {
			return db
		}

		return db.Where("campgrounds.name ~* ?", filter.NamePattern)
	}
}

// pageBeyondLast reports whether a 1-based page starts past the last record.
// Pages that pass keep the offset within total, so it never overflows.
func pageBeyondLast(page, pageSize int, total int64) bool {
	if pageSize < 1 {
		return true
	}

	return int64(page-1) >= (total+int64(pageSize)-1)/int64(pageSize)
}

// UpdateCampground applies the editable fields and returns the stored record.
func (repo *campgroundRepository) UpdateCampground(ctx context.Context, id uuid.UUID, patch *repository.CampgroundPatch) (*entity.Campground, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CampgroundModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":             patch.Name,
			"description":      patch.Description,
			"price":            patch.Price,
			"image_url":        patch.ImageURL,
			"location_query":   patch.Location.Query,
			"location_address": patch.Location.Address,
			"latitude":         patch.Location.Latitude,
			"longitude":        patch.Location.Longitude,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		if isColumnViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("campground violates a column constraint")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update campground")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCampgroundNotFound
	}

	// Read back from the primary so replicas lagging behind cannot return the old row.
	return repo.findByID(ctx, repo.db.Clauses(dbresolver.Write), id)
}

// Delete removes the campground record.
func (repo *campgroundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CampgroundModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("campground still has dependent records")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete campground")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampgroundNotFound
	}

	return nil
}

func pluckDependentIDs(ctx context.Context, db *gorm.DB, dependent any, campgroundID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := db.WithContext(ctx).
		Model(dependent).
		Where("campground_id = ?", campgroundID).
		Order("created_at ASC, id ASC").
		Pluck("id", &ids).Error

	return ids, err
}

// --- Mapper Functions ---

func toCampgroundDomain(data *model.CampgroundRow) *entity.Campground {
	if data == nil {
		return nil
	}

	return &entity.Campground{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Location: entity.Location{
			Query:     data.LocationQuery,
			Address:   data.LocationAddress,
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		Author: entity.Author{
			ID:       data.AuthorID,
			Username: data.AuthorUsername,
		},
		CommentIDs: []uuid.UUID{},
		ReviewIDs:  []uuid.UUID{},
		Rating:     data.Rating,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCampgroundDomain(data *entity.Campground) *model.CampgroundModel {
	if data == nil {
		return nil
	}

	return &model.CampgroundModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		ImageURL:        data.ImageURL,
		LocationQuery:   data.Location.Query,
		LocationAddress: data.Location.Address,
		Latitude:        data.Location.Latitude,
		Longitude:       data.Location.Longitude,
		AuthorID:        data.Author.ID,
		AuthorUsername:  data.Author.Username,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
