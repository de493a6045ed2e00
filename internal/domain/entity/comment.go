package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a dependent record attached to a campground.
type Comment struct {
	ID           uuid.UUID `json:"id"`
	CampgroundID uuid.UUID `json:"campground_id"`
	Text         string    `json:"text"`
	Author       Author    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
