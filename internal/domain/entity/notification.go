// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification tells a follower that a user they follow created a campground.
// The referenced campground may have been deleted since; readers must tolerate that.
type Notification struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the notification.
	UserID        uuid.UUID `json:"user_id"`        // The subscriber who owns this notification.
	ActorUsername string    `json:"actor_username"` // Username of the user who created the campground.
	CampgroundID  uuid.UUID `json:"campground_id"`  // The campground that triggered the notification.
	IsRead        bool      `json:"is_read"`        // Whether the subscriber has opened it.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when the notification was created.
}
