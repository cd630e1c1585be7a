// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"time"
)

// TargetType identifies which kind of content a like or notification
// reference points at.
type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
	TargetReview  TargetType = "review"
	TargetTip     TargetType = "tip"
	TargetWiki    TargetType = "wiki"
)

// Valid reports whether the target type is one of the known content kinds.
func (t TargetType) Valid() bool {
	switch t {
	case TargetPost, TargetComment, TargetReview, TargetTip, TargetWiki:
		return true
	}
	return false
}

// TargetRef is a typed reference to a piece of likeable content.
type TargetRef struct {
	Type TargetType `json:"type"`
	ID   uint       `json:"id"`
}

func (r TargetRef) String() string {
	return fmt.Sprintf("%s:%d", r.Type, r.ID)
}

// Like records that a user liked a piece of content. The composite unique
// index makes a second like by the same user on the same target a no-op at
// the database level.
type Like struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_likes_user_target" json:"user_id"`
	TargetType TargetType `gorm:"type:varchar(20);not null;uniqueIndex:idx_likes_user_target" json:"target_type"`
	TargetID   uint       `gorm:"not null;uniqueIndex:idx_likes_user_target" json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Like) TableName() string {
	return "likes"
}
