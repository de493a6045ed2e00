// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Campground is a user-submitted location entry with a geocoded position, an image
// and the comments and reviews attached to it.
type Campground struct {
	ID          uuid.UUID   `json:"id"`          // The Global Unique Identifier (GUID) for the campground.
	Name        string      `json:"name"`        // The display name, matched by search.
	Description string      `json:"description"` // Free-text description written by the author.
	Price       float64     `json:"price"`       // Nightly price.
	ImageURL    string      `json:"image_url"`   // Public URL of the uploaded image or the placeholder.
	Location    Location    `json:"location"`    // Geocoded location, always fully populated.
	Author      Author      `json:"author"`      // The user who created the campground.
	CommentIDs  []uuid.UUID `json:"comment_ids"` // Ordered references to comment records.
	ReviewIDs   []uuid.UUID `json:"review_ids"`  // Ordered references to review records.
	Rating      float64     `json:"rating"`      // Average review rating, derived from reviews and never client-supplied.
	CreatedAt   time.Time   `json:"created_at"`  // Timestamp of when the campground was created.
	UpdatedAt   time.Time   `json:"updated_at"`  // Timestamp of the last modification.
}

// IsAuthoredBy reports whether userID is the campground's author.
func (c *Campground) IsAuthoredBy(userID uuid.UUID) bool {
	return c != nil && c.Author.ID == userID
}

// Location holds the result of resolving a free-text query to a position.
type Location struct {
	Query     string  `json:"query"`     // The raw text the author typed.
	Address   string  `json:"address"`   // Canonical address returned by the geocoder.
	Latitude  float64 `json:"latitude"`  // The geographic latitude.
	Longitude float64 `json:"longitude"` // The geographic longitude.
}

// Point returns the location as an orb point (longitude, latitude).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// IsComplete reports whether every location field carries a geocoded value.
func (l Location) IsComplete() bool {
	if l.Query == "" || l.Address == "" {
		return false
	}

	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// Author identifies the user who created a campground.
type Author struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
