// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"campground/internal/domain/entity"
	"campground/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDuplicateNotification is returned when a subscriber already has a notification for the campground.
	ErrDuplicateNotification = errors.New("notification already exists")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByUser retrieves a subscriber's notifications, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags a notification as opened.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Delete removes a notification.
	Delete(ctx context.Context, id uuid.UUID) error
}
