package service

import (
	"context"
)

// CampgroundCreatedEvent is published after a campground is persisted so followers can be notified.
type CampgroundCreatedEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	CampgroundID   string `json:"campground_id"`
	CampgroundName string `json:"campground_name"`
	AuthorID       string `json:"author_id"`
	AuthorUsername string `json:"author_username"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCampgroundCreated publishes a campground creation event for async processing
	PublishCampgroundCreated(ctx context.Context, event *CampgroundCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
