package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// CampgroundID has no foreign key: notifications outlive the campgrounds they point at.
type NotificationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notifications_user_campground"`
	ActorUsername string    `gorm:"type:text;not null"`
	CampgroundID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notifications_user_campground"`
	IsRead        bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
