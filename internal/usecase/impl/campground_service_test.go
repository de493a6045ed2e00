package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"campground/config"
	"campground/internal/domain/constants"
	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/repository"
	"campground/internal/domain/service"
	"campground/internal/errors"
	mockRepo "campground/internal/mocks/repository"
	mockSvc "campground/internal/mocks/service"
	"campground/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPlaceholderURL = "/images/temp.png"

type campgroundMocks struct {
	txManager      *mockRepo.MockTransactionManager
	campgroundRepo *mockRepo.MockCampgroundRepository
	commentRepo    *mockRepo.MockCommentRepository
	reviewRepo     *mockRepo.MockReviewRepository
	geocoder       *mockSvc.MockGeocoder
	imageStore     *mockSvc.MockImageStore
	publisher      *mockSvc.MockEventPublisher
	weather        *mockSvc.MockWeatherService
}

func createTestCampgroundService(t *testing.T) (usecase.CampgroundUsecase, *campgroundMocks) {
	m := &campgroundMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		campgroundRepo: mockRepo.NewMockCampgroundRepository(t),
		commentRepo:    mockRepo.NewMockCommentRepository(t),
		reviewRepo:     mockRepo.NewMockReviewRepository(t),
		geocoder:       mockSvc.NewMockGeocoder(t),
		imageStore:     mockSvc.NewMockImageStore(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		weather:        mockSvc.NewMockWeatherService(t),
	}

	svc := NewCampgroundService(CampgroundServiceParams{
		TxManager:      m.txManager,
		CampgroundRepo: m.campgroundRepo,
		CommentRepo:    m.commentRepo,
		ReviewRepo:     m.reviewRepo,
		Geocoder:       m.geocoder,
		ImageStore:     m.imageStore,
		Publisher:      m.publisher,
		Weather:        m.weather,
		Config: &config.Config{
			Campground: &config.CampgroundConfig{
				PageSize:            8,
				PlaceholderImageURL: testPlaceholderURL,
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

func newTestActor(roles ...string) *entity.Actor {
	return &entity.Actor{ID: uuid.New(), Username: "ranger", Roles: roles}
}

func newTestInput() *usecase.CampgroundInput {
	return &usecase.CampgroundInput{
		Name:        "Pine Flat",
		Description: "Quiet sites by the creek",
		Price:       25,
		Location:    "Pine Flat, CA",
	}
}

func newTestImage(filename string) *service.ImageUpload {
	return &service.ImageUpload{
		Filename:    filename,
		ContentType: "image/jpeg",
		Size:        4,
		Content:     strings.NewReader("data"),
	}
}

func newTestCampground(author entity.Author) *entity.Campground {
	return &entity.Campground{
		ID:          uuid.New(),
		Name:        "Pine Flat",
		Description: "Quiet sites by the creek",
		Price:       25,
		ImageURL:    "https://cdn.example.com/campgrounds/old.jpg",
		Location: entity.Location{
			Query:     "Pine Flat, CA",
			Address:   "Pine Flat, CA, USA",
			Latitude:  36.83,
			Longitude: -119.32,
		},
		Author:     author,
		CommentIDs: []uuid.UUID{uuid.New(), uuid.New()},
		ReviewIDs:  []uuid.UUID{uuid.New()},
	}
}

var testGeocodeResult = &service.GeocodeResult{
	Address:   "Pine Flat, CA, USA",
	Latitude:  36.83,
	Longitude: -119.32,
}

func TestCampgroundService_ListCampgrounds_NoSearch(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()

	items := []*entity.Campground{newTestCampground(entity.Author{ID: uuid.New()})}
	m.campgroundRepo.EXPECT().
		FindCampgrounds(ctx, repository.CampgroundFilter{}, 1, 8).
		Return(items, int64(10), nil)

	page, err := svc.ListCampgrounds(ctx, usecase.SearchQuery{Page: 0})

	require.NoError(t, err)
	assert.Equal(t, items, page.Campgrounds)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(10), page.TotalCount)
	assert.False(t, page.Searched)
	assert.False(t, page.NoMatch)
}

func TestCampgroundService_ListCampgrounds_DropsMalformedSearchBytes(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()

	m.campgroundRepo.EXPECT().
		FindCampgrounds(ctx, repository.CampgroundFilter{NamePattern: "tent  lake"}, 1, 8).
		Return(nil, int64(0), nil)

	var (
		page *usecase.CampgroundPage
		err  error
	)
	require.NotPanics(t, func() {
		page, err = svc.ListCampgrounds(ctx, usecase.SearchQuery{Pattern: "tent \xff lake\x00", Page: 1})
	})

	require.NoError(t, err)
	assert.Equal(t, "tent  lake", page.Search)
	assert.True(t, page.NoMatch)
}

func TestCampgroundService_ListCampgrounds_EscapesSearchPattern(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()

	m.campgroundRepo.EXPECT().
		FindCampgrounds(ctx, mock.MatchedBy(func(filter repository.CampgroundFilter) bool {
			return filter.NamePattern == `pine\.\*\(`
		}), 1, 8).
		Return(nil, int64(0), nil)

	page, err := svc.ListCampgrounds(ctx, usecase.SearchQuery{Pattern: "pine.*(", Page: 1})

	require.NoError(t, err)
	assert.Empty(t, page.Campgrounds)
	assert.NotNil(t, page.Campgrounds)
	assert.True(t, page.Searched)
	assert.True(t, page.NoMatch)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, "pine.*(", page.Search)
}

func TestCampgroundService_ListCampgrounds_PageBeyondLast(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()

	m.campgroundRepo.EXPECT().
		FindCampgrounds(ctx, repository.CampgroundFilter{}, 5, 8).
		Return([]*entity.Campground{}, int64(3), nil)

	page, err := svc.ListCampgrounds(ctx, usecase.SearchQuery{Page: 5})

	require.NoError(t, err)
	assert.Empty(t, page.Campgrounds)
	assert.Equal(t, 5, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.NoMatch)
}

func TestCampgroundService_ListCampgrounds_StoreFailure(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()

	m.campgroundRepo.EXPECT().
		FindCampgrounds(ctx, mock.Anything, 1, 8).
		Return(nil, int64(0), errors.New("connection refused"))

	_, err := svc.ListCampgrounds(ctx, usecase.SearchQuery{Page: 1})

	require.Error(t, err)
}

func TestCampgroundService_CreateCampground_WithImage(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	actor := newTestActor()
	input := newTestInput()
	input.Image = newTestImage("Lake.JPG")
	storedURL := "https://cdn.example.com/campgrounds/1-abc-lake.jpg"

	m.imageStore.EXPECT().Store(ctx, input.Image).
		Return(&service.StoredImage{Key: "campgrounds/1-abc-lake.jpg", URL: storedURL}, nil)
	m.geocoder.EXPECT().Geocode(ctx, "Pine Flat, CA").Return(testGeocodeResult, nil)
	m.campgroundRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, campground *entity.Campground) {
			campground.ID = uuid.New()
		}).
		Return(nil)
	m.publisher.EXPECT().
		PublishCampgroundCreated(ctx, mock.MatchedBy(func(event *service.CampgroundCreatedEvent) bool {
			return event.AuthorID == actor.ID.String() && event.AuthorUsername == "ranger" && event.CampgroundName == "Pine Flat"
		})).
		Return(nil)

	campground, err := svc.CreateCampground(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, storedURL, campground.ImageURL)
	assert.Equal(t, actor.AsAuthor(), campground.Author)
	assert.Equal(t, "Pine Flat, CA", campground.Location.Query)
	assert.Equal(t, "Pine Flat, CA, USA", campground.Location.Address)
	assert.InDelta(t, 36.83, campground.Location.Latitude, 1e-9)
	assert.Zero(t, campground.Rating)
}

func TestCampgroundService_CreateCampground_PlaceholderAndPublishFailure(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()

	m.geocoder.EXPECT().Geocode(ctx, "Pine Flat, CA").Return(testGeocodeResult, nil)
	m.campgroundRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishCampgroundCreated(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	campground, err := svc.CreateCampground(ctx, newTestActor(), newTestInput())

	require.NoError(t, err)
	assert.Equal(t, testPlaceholderURL, campground.ImageURL)
}

func TestCampgroundService_CreateCampground_RejectsNonImageBeforeAdapters(t *testing.T) {
	svc, _ := createTestCampgroundService(t)
	input := newTestInput()
	input.Image = newTestImage("notes.pdf")

	_, err := svc.CreateCampground(context.Background(), newTestActor(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidImageType)
}

func TestCampgroundService_CreateCampground_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input func() *usecase.CampgroundInput
	}{
		{
			name: "blank name",
			input: func() *usecase.CampgroundInput {
				in := newTestInput()
				in.Name = "   "
				return in
			},
		},
		{
			name: "negative price",
			input: func() *usecase.CampgroundInput {
				in := newTestInput()
				in.Price = -1
				return in
			},
		},
		{
			name: "price beyond column range",
			input: func() *usecase.CampgroundInput {
				in := newTestInput()
				in.Price = 1e9
				in.Image = newTestImage("site.png")
				return in
			},
		},
		{
			name: "infinite price",
			input: func() *usecase.CampgroundInput {
				in := newTestInput()
				in.Price = math.Inf(1)
				in.Image = newTestImage("site.png")
				return in
			},
		},
		{
			name: "nan price",
			input: func() *usecase.CampgroundInput {
				in := newTestInput()
				in.Price = math.NaN()
				return in
			},
		},
		{
			name: "missing location",
			input: func() *usecase.CampgroundInput {
				in := newTestInput()
				in.Location = ""
				return in
			},
		},
		{
			name:  "nil input",
			input: func() *usecase.CampgroundInput { return nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestCampgroundService(t)

			_, err := svc.CreateCampground(context.Background(), newTestActor(), tt.input())

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCampgroundService_CreateCampground_RequiresActor(t *testing.T) {
	svc, _ := createTestCampgroundService(t)

	_, err := svc.CreateCampground(context.Background(), nil, newTestInput())

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCampgroundService_CreateCampground_GeocodeFailureDiscardsUpload(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	input := newTestInput()
	input.Image = newTestImage("lake.png")
	storedURL := "https://cdn.example.com/campgrounds/2-def-lake.png"

	m.imageStore.EXPECT().Store(ctx, input.Image).Return(&service.StoredImage{URL: storedURL}, nil)
	m.geocoder.EXPECT().Geocode(ctx, "Pine Flat, CA").Return(nil, domainerrors.ErrGeocodeInvalidAddress)
	m.imageStore.EXPECT().Delete(mock.Anything, storedURL).Return(nil)

	_, err := svc.CreateCampground(ctx, newTestActor(), input)

	assert.ErrorIs(t, err, domainerrors.ErrGeocodeInvalidAddress)
}

func TestCampgroundService_CreateCampground_UploadFailureStopsPipeline(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	input := newTestInput()
	input.Image = newTestImage("lake.gif")

	m.imageStore.EXPECT().Store(ctx, input.Image).Return(nil, domainerrors.ErrImageUploadFailed)

	_, err := svc.CreateCampground(ctx, newTestActor(), input)

	assert.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
}

func TestCampgroundService_CreateCampground_PersistFailure(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create campground")

	m.geocoder.EXPECT().Geocode(ctx, "Pine Flat, CA").Return(testGeocodeResult, nil)
	m.campgroundRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr)

	_, err := svc.CreateCampground(ctx, newTestActor(), newTestInput())

	require.Error(t, err)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestCampgroundService_UpdateCampground_NonOwnerRejectedBeforeSideEffects(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	existing := newTestCampground(entity.Author{ID: uuid.New(), Username: "owner"})
	input := newTestInput()
	input.Image = newTestImage("new.jpg")

	m.campgroundRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	_, err := svc.UpdateCampground(ctx, newTestActor(), existing.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrCampgroundOwnershipViolation)
}

func TestCampgroundService_UpdateCampground_NotFound(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	id := uuid.New()

	m.campgroundRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCampgroundNotFound)

	_, err := svc.UpdateCampground(ctx, newTestActor(), id, newTestInput())

	assert.ErrorIs(t, err, domainerrors.ErrCampgroundNotFound)
}

func TestCampgroundService_UpdateCampground_OwnerKeepsImage(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	actor := newTestActor()
	existing := newTestCampground(actor.AsAuthor())
	input := newTestInput()
	input.Name = "Pine Flat Upper"
	input.Location = "Upper Pine Flat, CA"

	m.campgroundRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	m.geocoder.EXPECT().Geocode(ctx, "Upper Pine Flat, CA").Return(testGeocodeResult, nil)
	m.campgroundRepo.EXPECT().
		UpdateCampground(ctx, existing.ID, mock.MatchedBy(func(patch *repository.CampgroundPatch) bool {
			return patch.Name == "Pine Flat Upper" &&
				patch.ImageURL == existing.ImageURL &&
				patch.Location.Query == "Upper Pine Flat, CA"
		})).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, patch *repository.CampgroundPatch) (*entity.Campground, error) {
			updated := *existing
			updated.Name = patch.Name
			updated.Location = patch.Location

			return &updated, nil
		})

	campground, err := svc.UpdateCampground(ctx, actor, existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Pine Flat Upper", campground.Name)
	assert.Equal(t, existing.ImageURL, campground.ImageURL)
}

func TestCampgroundService_UpdateCampground_AdminReplacesImage(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	existing := newTestCampground(entity.Author{ID: uuid.New(), Username: "owner"})
	input := newTestInput()
	input.Image = newTestImage("new.jpeg")
	newURL := "https://cdn.example.com/campgrounds/3-xyz-new.jpeg"

	m.campgroundRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	m.imageStore.EXPECT().Store(ctx, input.Image).Return(&service.StoredImage{URL: newURL}, nil)
	m.geocoder.EXPECT().Geocode(ctx, "Pine Flat, CA").Return(testGeocodeResult, nil)
	m.campgroundRepo.EXPECT().UpdateCampground(ctx, existing.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, patch *repository.CampgroundPatch) (*entity.Campground, error) {
			updated := *existing
			updated.ImageURL = patch.ImageURL

			return &updated, nil
		})
	m.imageStore.EXPECT().Delete(mock.Anything, existing.ImageURL).Return(nil)

	campground, err := svc.UpdateCampground(ctx, newTestActor(constants.RoleAdmin), existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, newURL, campground.ImageURL)
	assert.Equal(t, existing.Author, campground.Author)
}

func TestCampgroundService_GetCampground_WeatherFailureIsOmitted(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	campground := newTestCampground(entity.Author{ID: uuid.New()})
	comments := []*entity.Comment{{ID: uuid.New(), Text: "newer"}, {ID: uuid.New(), Text: "older"}}
	reviews := []*entity.Review{{ID: uuid.New(), Rating: 5}}

	m.campgroundRepo.EXPECT().FindByID(ctx, campground.ID).Return(campground, nil)
	m.commentRepo.EXPECT().FindByCampground(mock.Anything, campground.ID).Return(comments, nil)
	m.reviewRepo.EXPECT().FindByCampground(mock.Anything, campground.ID).Return(reviews, nil)
	m.weather.EXPECT().Forecast(mock.Anything, campground.Location.Point()).Return(nil, errors.New("timeout"))

	detail, err := svc.GetCampground(ctx, campground.ID)

	require.NoError(t, err)
	assert.Equal(t, campground, detail.Campground)
	assert.Equal(t, comments, detail.Comments)
	assert.Equal(t, reviews, detail.Reviews)
	assert.Nil(t, detail.Weather)
}

func TestCampgroundService_GetCampground_WithWeather(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	campground := newTestCampground(entity.Author{ID: uuid.New()})
	weather := &entity.Weather{Temperature: 18.5, Summary: "Clear sky"}

	m.campgroundRepo.EXPECT().FindByID(ctx, campground.ID).Return(campground, nil)
	m.commentRepo.EXPECT().FindByCampground(mock.Anything, campground.ID).Return([]*entity.Comment{}, nil)
	m.reviewRepo.EXPECT().FindByCampground(mock.Anything, campground.ID).Return([]*entity.Review{}, nil)
	m.weather.EXPECT().Forecast(mock.Anything, campground.Location.Point()).Return(weather, nil)

	detail, err := svc.GetCampground(ctx, campground.ID)

	require.NoError(t, err)
	assert.Equal(t, weather, detail.Weather)
}

func TestCampgroundService_GetCampground_NotFound(t *testing.T) {
	svc, m := createTestCampgroundService(t)
	ctx := context.Background()
	id := uuid.New()

	m.campgroundRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCampgroundNotFound)

	_, err := svc.GetCampground(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrCampgroundNotFound)
}
