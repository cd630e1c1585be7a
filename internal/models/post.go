// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus represents where a post sits in the moderation pipeline.
type PostStatus string

const (
	// PostStatusPending indicates a post awaiting moderator review.
	PostStatusPending PostStatus = "pending"
	// PostStatusApproved indicates a post visible in the public feed.
	PostStatusApproved PostStatus = "approved"
	// PostStatusDeclined indicates a post rejected by a moderator.
	PostStatusDeclined PostStatus = "declined"
)

// Valid reports whether the status is one of the known statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusPending, PostStatusApproved, PostStatusDeclined:
		return true
	}
	return false
}

// Post represents a community post. New posts start pending and only become
// publicly visible once a moderator approves them.
type Post struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	Title   string     `gorm:"not null" json:"title"`
	Content string     `gorm:"type:text;not null" json:"content"`
	UserID  uint       `gorm:"not null;index" json:"user_id"`
	User    User       `gorm:"foreignKey:UserID" json:"user"`
	GameID  *uint      `gorm:"index" json:"game_id,omitempty"`
	Game    *Game      `gorm:"foreignKey:GameID" json:"game,omitempty"`
	Status  PostStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
