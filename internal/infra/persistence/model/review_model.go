package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	CampgroundID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating         int       `gorm:"type:smallint;not null;check:rating BETWEEN 1 AND 5"`
	Text           string    `gorm:"type:text;not null"`
	AuthorID       uuid.UUID `gorm:"type:uuid;not null"`
	AuthorUsername string    `gorm:"type:text;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
