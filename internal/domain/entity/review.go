package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rated dependent record attached to a campground. The campground's
// rating is the average of its reviews' ratings.
type Review struct {
	ID           uuid.UUID `json:"id"`
	CampgroundID uuid.UUID `json:"campground_id"`
	Rating       int       `json:"rating"` // 1 to 5.
	Text         string    `json:"text"`
	Author       Author    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
