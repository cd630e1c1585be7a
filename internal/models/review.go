// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a rated writeup of a game. A user may review a game once.
type Review struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	Body   string `gorm:"type:text;not null" json:"body"`
	Rating int    `gorm:"not null" json:"rating"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_reviews_user_game" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"user"`
	GameID uint   `gorm:"not null;uniqueIndex:idx_reviews_user_game" json:"game_id"`
	Game   Game   `gorm:"foreignKey:GameID" json:"-"`
	// LikesCount is not persisted; computed at query time
	LikesCount int            `gorm:"->" json:"likes_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
