// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// ModeratorAction is an audit row written for every moderation decision.
// Rows are never updated or deleted.
type ModeratorAction struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ModeratorID uint       `gorm:"not null;index" json:"moderator_id"`
	Moderator   User       `gorm:"foreignKey:ModeratorID" json:"moderator,omitempty"`
	PostID      uint       `gorm:"not null;index" json:"post_id"`
	FromStatus  PostStatus `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus    PostStatus `gorm:"type:varchar(20);not null" json:"to_status"`
	Reason      string     `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName specifies the table name for GORM
func (ModeratorAction) TableName() string {
	return "moderator_actions"
}
