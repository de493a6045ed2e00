package model

import (
	"time"

	"github.com/google/uuid"
)

// CampgroundModel is the GORM-specific struct for the 'campgrounds' table.
// The rating is not stored; it is computed from the reviews table on read.
type CampgroundModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Name            string    `gorm:"type:text;not null"`
	Description     string    `gorm:"type:text;not null"`
	Price           float64   `gorm:"type:numeric(10,2);not null;default:0"`
	ImageURL        string    `gorm:"column:image_url;type:text;not null"`
	LocationQuery   string    `gorm:"type:text;not null"`
	LocationAddress string    `gorm:"type:text;not null"`
	Latitude        float64   `gorm:"type:decimal(10,8);not null"`
	Longitude       float64   `gorm:"type:decimal(11,8);not null"`
	AuthorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorUsername  string    `gorm:"type:text;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampgroundModel) TableName() string {
	return "campgrounds"
}

// CampgroundRow is a campground read together with its derived rating.
type CampgroundRow struct {
	CampgroundModel `gorm:"embedded"`
	Rating          float64
}
