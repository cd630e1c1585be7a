// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// WikiEntry is a community-maintained reference page for a game. The slug
// is unique per game so entries can be addressed by name.
type WikiEntry struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Slug    string `gorm:"not null;uniqueIndex:idx_wiki_game_slug" json:"slug"`
	Body    string `gorm:"type:text;not null" json:"body"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	GameID  uint   `gorm:"not null;uniqueIndex:idx_wiki_game_slug" json:"game_id"`
	Game    Game   `gorm:"foreignKey:GameID" json:"-"`
	Version int    `gorm:"not null;default:1" json:"version"`
	// LikesCount is not persisted; computed at query time
	LikesCount int            `gorm:"->" json:"likes_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (WikiEntry) TableName() string {
	return "wiki_entries"
}
