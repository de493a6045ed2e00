package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel is the GORM-specific struct for the 'comments' table.
// Rows are written by the comment sub-resource; this service reads and cascades them.
type CommentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	CampgroundID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Text           string    `gorm:"type:text;not null"`
	AuthorID       uuid.UUID `gorm:"type:uuid;not null"`
	AuthorUsername string    `gorm:"type:text;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
