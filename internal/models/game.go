// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Game is a catalog entry that reviews, tips and wiki pages attach to.
type Game struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;uniqueIndex" json:"title"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Genre       string `gorm:"index" json:"genre"`
	Developer   string `json:"developer"`
	ReleaseYear int    `json:"release_year"`
	CoverURL    string `json:"cover_url"`
	// AvgRating is not persisted; computed at query time
	AvgRating float64 `gorm:"->" json:"avg_rating"`
	// ReviewsCount is not persisted; computed at query time
	ReviewsCount int `gorm:"->" json:"reviews_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
