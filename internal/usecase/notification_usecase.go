package usecase

import (
	"context"

	"campground/internal/domain/entity"
	"campground/internal/domain/service"

	"github.com/google/uuid"
)

// FanOutResult summarises one notification fan-out run
type FanOutResult struct {
	Followers  int // Followers enumerated when the run started
	Created    int // Notifications written by this run
	Duplicates int // Followers already notified by an earlier delivery
	Failed     int // Followers whose notification could not be written
}

// NotificationView is an opened notification with the campground it points at.
// Campground is nil when the campground has since been deleted.
type NotificationView struct {
	Notification *entity.Notification `json:"notification"`
	Campground   *entity.Campground   `json:"campground"`
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// FanOut writes one notification per follower of the event's author.
	// Only a failure to enumerate followers is returned; per-follower failures are counted.
	FanOut(ctx context.Context, event *service.CampgroundCreatedEvent) (*FanOutResult, error)

	// GetUserNotifications lists a user's notifications, newest first
	GetUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// OpenNotification marks a notification read and resolves its campground
	OpenNotification(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationView, error)

	// DeleteNotification removes a notification owned by the user
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
