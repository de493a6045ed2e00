package usecase

import (
	"context"
	"strconv"
	"strings"

	"campground/internal/domain/entity"
	"campground/internal/domain/service"

	"github.com/google/uuid"
)

// CampgroundInput carries the client-editable fields for create and update.
// Any other field a client sends, the rating in particular, never reaches this struct.
type CampgroundInput struct {
	Name        string               `validate:"required,max=200"`
	Description string               `validate:"required,max=5000"`
	Price       float64              `validate:"gte=0,lte=99999999.99"` // Fits NUMERIC(10,2); NaN and ±Inf fail.
	Location    string               `validate:"required,max=500"`
	Image       *service.ImageUpload `validate:"-"` // Optional; nil keeps the placeholder or existing image.
}

// SearchQuery is an ephemeral listing request.
type SearchQuery struct {
	Pattern string // Free text matched literally against names; empty lists everything.
	Page    int    // 1-based page number; values below 1 are treated as 1.
}

// ParsePage converts a raw page parameter to a 1-based page number.
// Absent, non-numeric and non-positive values all yield 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// CampgroundPage is one page of a listing.
type CampgroundPage struct {
	Campgrounds []*entity.Campground `json:"campgrounds"`
	CurrentPage int                  `json:"current_page"`
	TotalPages  int                  `json:"total_pages"`
	TotalCount  int64                `json:"total_count"`
	Search      string               `json:"search,omitempty"`
	Searched    bool                 `json:"searched"` // A search pattern was supplied.
	NoMatch     bool                 `json:"no_match"` // A search was performed and matched nothing.
}

// CampgroundDetail is a campground with its dependents, newest first.
type CampgroundDetail struct {
	Campground *entity.Campground `json:"campground"`
	Comments   []*entity.Comment  `json:"comments"`
	Reviews    []*entity.Review   `json:"reviews"`
	Weather    *entity.Weather    `json:"weather,omitempty"` // Omitted when the lookup fails.
}

// CampgroundUsecase defines the interface for campground management use cases
type CampgroundUsecase interface {
	// ListCampgrounds returns a page of campgrounds, optionally filtered by name
	ListCampgrounds(ctx context.Context, query SearchQuery) (*CampgroundPage, error)

	// GetCampground returns a campground with comments, reviews and best-effort weather
	GetCampground(ctx context.Context, id uuid.UUID) (*CampgroundDetail, error)

	// CreateCampground uploads the image, geocodes the location, persists the record
	// and queues follower notifications
	CreateCampground(ctx context.Context, actor *entity.Actor, input *CampgroundInput) (*entity.Campground, error)

	// UpdateCampground applies an ownership-gated update with location revalidation
	UpdateCampground(ctx context.Context, actor *entity.Actor, id uuid.UUID, input *CampgroundInput) (*entity.Campground, error)

	// DeleteCampground removes a campground with its comments and reviews
	DeleteCampground(ctx context.Context, actor *entity.Actor, id uuid.UUID) error
}
