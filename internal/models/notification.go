// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// NotificationType categorizes notifications for client rendering.
type NotificationType string

const (
	NotificationLike         NotificationType = "like"
	NotificationComment      NotificationType = "comment"
	NotificationAchievement  NotificationType = "achievement"
	NotificationPostApproved NotificationType = "post_approved"
	NotificationPostDeclined NotificationType = "post_declined"
	NotificationLevelUp      NotificationType = "level_up"
)

// Valid reports whether the notification type is a known one.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationLike, NotificationComment, NotificationAchievement,
		NotificationPostApproved, NotificationPostDeclined, NotificationLevelUp:
		return true
	}
	return false
}

// Notification is a per-user inbox entry. Payload carries type-specific
// detail such as the actor, the target reference, or the achievement key.
type Notification struct {
	ID      uint             `gorm:"primaryKey" json:"id"`
	UserID  uint             `gorm:"not null;index:idx_notifications_user_read" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(32);not null" json:"type"`
	Message string           `gorm:"not null" json:"message"`
	Payload JSONMap          `gorm:"type:text" json:"payload"`
	IsRead  bool             `gorm:"not null;default:false;index:idx_notifications_user_read" json:"read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
