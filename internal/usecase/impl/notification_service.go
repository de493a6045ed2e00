package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"campground/config"
	deliverycontext "campground/internal/delivery/context"
	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/repository"
	"campground/internal/domain/service"
	"campground/internal/errors"
	"campground/internal/usecase"
	"campground/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFanOutConcurrency = 8
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	followRepo       repository.FollowRepository
	campgroundRepo   repository.CampgroundRepository
	concurrency      int
	timeout          time.Duration
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	FollowRepo       repository.FollowRepository
	CampgroundRepo   repository.CampgroundRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	concurrency := defaultFanOutConcurrency
	var timeout time.Duration
	if params.Config != nil && params.Config.Campground != nil {
		if params.Config.Campground.FanOutConcurrency > 0 {
			concurrency = params.Config.Campground.FanOutConcurrency
		}
		timeout = params.Config.Campground.FanOutTimeout
	}

	return &notificationService{
		notificationRepo: params.NotificationRepo,
		followRepo:       params.FollowRepo,
		campgroundRepo:   params.CampgroundRepo,
		concurrency:      concurrency,
		timeout:          timeout,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FanOut writes one notification per follower of the event's author. Failures
// for individual followers are logged and counted without stopping the others.
func (s *notificationService) FanOut(ctx context.Context, event *service.CampgroundCreatedEvent) (*usecase.FanOutResult, error) {
	if event == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event is required")
	}

	authorID, err := uuid.Parse(event.AuthorID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid author_id")
	}
	campgroundID, err := uuid.Parse(event.CampgroundID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid campground_id")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	followerIDs, err := s.followRepo.FindFollowerIDs(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate followers")
	}

	var created, duplicates, failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for _, followerID := range followerIDs {
		g.Go(func() error {
			notification := &entity.Notification{
				UserID:        followerID,
				ActorUsername: event.AuthorUsername,
				CampgroundID:  campgroundID,
			}

			err := s.notificationRepo.Create(ctx, notification)
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, repository.ErrDuplicateNotification):
				duplicates.Add(1)
			default:
				failed.Add(1)
				s.log(ctx).Error("Failed to notify follower",
					slog.String("followerID", followerID.String()),
					slog.String("campgroundID", event.CampgroundID),
					slog.Any("error", err),
				)
			}

			return nil
		})
	}
	_ = g.Wait()

	result := &usecase.FanOutResult{
		Followers:  len(followerIDs),
		Created:    int(created.Load()),
		Duplicates: int(duplicates.Load()),
		Failed:     int(failed.Load()),
	}

	s.log(ctx).Info("Notification fan-out finished",
		slog.String("campgroundID", event.CampgroundID),
		slog.String("requestID", event.RequestID),
		slog.Int("followers", result.Followers),
		slog.Int("created", result.Created),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("failed", result.Failed),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return result, nil
}

// GetUserNotifications lists a user's notifications, newest first.
func (s *notificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user notifications")
	}

	return notifications, nil
}

// OpenNotification marks a notification read and resolves the campground it points at.
func (s *notificationService) OpenNotification(ctx context.Context, userID, notificationID uuid.UUID) (*usecase.NotificationView, error) {
	notification, err := s.findOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	if !notification.IsRead {
		if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
			return nil, s.translate(err, "failed to mark notification read")
		}
		notification.IsRead = true
	}

	view := &usecase.NotificationView{Notification: notification}

	campground, err := s.campgroundRepo.FindByID(ctx, notification.CampgroundID)
	switch {
	case err == nil:
		view.Campground = campground
	case errors.Is(err, repository.ErrCampgroundNotFound):
		s.log(ctx).Debug("Notification points at a deleted campground",
			slog.String("notificationID", notificationID.String()),
			slog.String("campgroundID", notification.CampgroundID.String()),
		)
	default:
		return nil, errors.Wrap(err, "failed to load notification campground")
	}

	return view, nil
}

// DeleteNotification removes a notification owned by the user.
func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.Delete(ctx, notificationID); err != nil {
		return s.translate(err, "failed to delete notification")
	}

	return nil
}

func (s *notificationService) findOwned(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, s.translate(err, "failed to find notification")
	}

	if notification.UserID != userID {
		return nil, domainerrors.ErrNotificationOwnershipViolation
	}

	return notification, nil
}

func (s *notificationService) translate(err error, message string) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, message)
}
