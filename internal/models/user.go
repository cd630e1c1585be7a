// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents a user's permission level.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "user"
	// RoleModerator can review and approve or decline pending posts.
	RoleModerator Role = "moderator"
	// RoleAdmin has full access, including everything moderators can do.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// CanModerate reports whether the role may act on the moderation queue.
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}

// XPPerLevel is the amount of experience required to advance one level.
const XPPerLevel = 100

// LevelForXP derives the level for a given experience total.
// Level 1 covers 0-99 XP, level 2 covers 100-199 XP, and so on.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// User represents a registered member of the community.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	Role     Role   `gorm:"type:varchar(20);default:'user';index" json:"role"`
	XP       int    `gorm:"not null;default:0;index" json:"xp"`
	// Level is not persisted; derived from XP on read so the two can
	// never disagree.
	Level      int        `gorm:"-" json:"level"`
	IsBanned   bool       `gorm:"not null;default:false" json:"is_banned"`
	MutedUntil *time.Time `json:"muted_until,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AfterFind populates the derived Level field.
func (u *User) AfterFind(_ *gorm.DB) error {
	u.Level = LevelForXP(u.XP)
	return nil
}

// IsMuted reports whether the user is muted at the given instant.
func (u *User) IsMuted(now time.Time) bool {
	return u.MutedUntil != nil && now.Before(*u.MutedUntil)
}

// CanPost reports whether the user may create content at the given instant.
func (u *User) CanPost(now time.Time) bool {
	return !u.IsBanned && !u.IsMuted(now)
}
