// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"campground/internal/domain/entity"
	"campground/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for campground persistence.
var (
	// ErrCampgroundNotFound is returned when a campground is not found.
	ErrCampgroundNotFound = errors.New("campground not found")
)

// CampgroundFilter narrows a listing query. An empty NamePattern matches every record.
type CampgroundFilter struct {
	// NamePattern is a case-insensitive regular expression over the campground name.
	// It is always built from escaped user input, so it only ever matches literal substrings.
	NamePattern string
}

// CampgroundPatch lists the fields an update may change. Rating, author and the
// dependent references are deliberately absent.
type CampgroundPatch struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Location    entity.Location
}

// CampgroundRepository defines the interface for campground-related database operations.
type CampgroundRepository interface {
	// Create persists a new campground. The ID and timestamps are assigned by the repository.
	Create(ctx context.Context, campground *entity.Campground) error

	// FindByID retrieves a campground with its comment and review references and derived rating.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campground, error)

	// FindCampgrounds returns one page of campgrounds matching filter, ordered by creation time,
	// along with the total number of matching records.
	FindCampgrounds(ctx context.Context, filter CampgroundFilter, page, pageSize int) ([]*entity.Campground, int64, error)

	// UpdateCampground applies patch to the campground and returns the updated record.
	UpdateCampground(ctx context.Context, id uuid.UUID, patch *CampgroundPatch) (*entity.Campground, error)

	// Delete removes the campground record. Dependents must already be gone.
	Delete(ctx context.Context, id uuid.UUID) error
}
