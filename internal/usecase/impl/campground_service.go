package impl

import (
	"context"
	"log/slog"

	"campground/config"
	deliverycontext "campground/internal/delivery/context"
	"campground/internal/domain/entity"
	"campground/internal/domain/repository"
	"campground/internal/domain/service"
	"campground/internal/errors"
	"campground/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultPageSize = 8

// campgroundService implements the CampgroundUsecase interface.
type campgroundService struct {
	txManager           repository.TransactionManager
	campgroundRepo      repository.CampgroundRepository
	commentRepo         repository.CommentRepository
	reviewRepo          repository.ReviewRepository
	geocoder            service.Geocoder
	imageStore          service.ImageStore
	publisher           service.EventPublisher
	weather             service.WeatherService
	validate            *validator.Validate
	pageSize            int
	placeholderImageURL string
	logger              *slog.Logger
}

// CampgroundServiceParams holds dependencies for CampgroundService, injected by Fx.
type CampgroundServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CampgroundRepo repository.CampgroundRepository
	CommentRepo    repository.CommentRepository
	ReviewRepo     repository.ReviewRepository
	Geocoder       service.Geocoder
	ImageStore     service.ImageStore
	Publisher      service.EventPublisher
	Weather        service.WeatherService `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCampgroundService is the constructor for campgroundService.
func NewCampgroundService(params CampgroundServiceParams) usecase.CampgroundUsecase {
	pageSize := defaultPageSize
	placeholder := ""
	if params.Config != nil && params.Config.Campground != nil {
		if params.Config.Campground.PageSize > 0 {
			pageSize = params.Config.Campground.PageSize
		}
		placeholder = params.Config.Campground.PlaceholderImageURL
	}

	return &campgroundService{
		txManager:           params.TxManager,
		campgroundRepo:      params.CampgroundRepo,
		commentRepo:         params.CommentRepo,
		reviewRepo:          params.ReviewRepo,
		geocoder:            params.Geocoder,
		imageStore:          params.ImageStore,
		publisher:           params.Publisher,
		weather:             params.Weather,
		validate:            validator.New(validator.WithRequiredStructEnabled()),
		pageSize:            pageSize,
		placeholderImageURL: placeholder,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *campgroundService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCampgrounds returns one page of campgrounds, optionally filtered by name.
func (srv *campgroundService) ListCampgrounds(ctx context.Context, query usecase.SearchQuery) (*usecase.CampgroundPage, error) {
	query.Page = normalizePage(query.Page)

	campgrounds, total, err := srv.campgroundRepo.FindCampgrounds(ctx, searchFilter(query.Pattern), query.Page, srv.pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campgrounds")
	}

	page := buildCampgroundPage(query, campgrounds, total, srv.pageSize)
	srv.log(ctx).Debug("Listed campgrounds",
		slog.Int("page", page.CurrentPage),
		slog.Int64("total", page.TotalCount),
		slog.Bool("searched", page.Searched),
	)

	return page, nil
}

// GetCampground returns a campground with its comments and reviews. Weather is
// best effort and omitted on failure.
func (srv *campgroundService) GetCampground(ctx context.Context, id uuid.UUID) (*usecase.CampgroundDetail, error) {
	campground, err := srv.campgroundRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateCampgroundError(err, "failed to find campground")
	}

	detail := &usecase.CampgroundDetail{Campground: campground}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		comments, err := srv.commentRepo.FindByCampground(gctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load comments")
		}
		detail.Comments = comments

		return nil
	})
	g.Go(func() error {
		reviews, err := srv.reviewRepo.FindByCampground(gctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load reviews")
		}
		detail.Reviews = reviews

		return nil
	})
	if srv.weather != nil {
		g.Go(func() error {
			weather, err := srv.weather.Forecast(gctx, campground.Location.Point())
			if err != nil {
				srv.log(ctx).Warn("Weather lookup failed",
					slog.String("campgroundID", id.String()),
					slog.Any("error", err),
				)

				return nil
			}
			detail.Weather = weather

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// CreateCampground validates, uploads, geocodes, persists and publishes.
func (srv *campgroundService) CreateCampground(ctx context.Context, actor *entity.Actor, input *usecase.CampgroundInput) (*entity.Campground, error) {
	state := &writeState{actor: actor, input: input}

	if err := srv.runPipeline(ctx, state, srv.createSteps()); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Campground created",
		slog.String("campgroundID", state.result.ID.String()),
		slog.String("authorID", actor.ID.String()),
	)

	return state.result, nil
}

// UpdateCampground applies an ownership-gated update with location revalidation.
func (srv *campgroundService) UpdateCampground(ctx context.Context, actor *entity.Actor, id uuid.UUID, input *usecase.CampgroundInput) (*entity.Campground, error) {
	state := &writeState{actor: actor, input: input, id: id}

	if err := srv.runPipeline(ctx, state, srv.updateSteps()); err != nil {
		return nil, err
	}

	if state.uploaded != nil && state.existing.ImageURL != state.result.ImageURL {
		srv.discardImage(ctx, state.existing.ImageURL)
	}

	srv.log(ctx).Info("Campground updated",
		slog.String("campgroundID", id.String()),
		slog.String("actorID", actor.ID.String()),
	)

	return state.result, nil
}

func requestIDFromContext(ctx context.Context) string {
	return deliverycontext.GetRequestIDFromContext(ctx)
}
