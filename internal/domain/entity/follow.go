// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Follow records that FollowerID subscribes to campgrounds created by FolloweeID.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"` // The subscribing user.
	FolloweeID uuid.UUID `json:"followee_id"` // The followed user.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when the follow was created.
}
