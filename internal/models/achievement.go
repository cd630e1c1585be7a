// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// AchievementMetric names the user statistic an achievement condition
// is evaluated against.
type AchievementMetric string

const (
	MetricPostsApproved   AchievementMetric = "posts_approved"
	MetricCommentsWritten AchievementMetric = "comments_written"
	MetricReviewsWritten  AchievementMetric = "reviews_written"
	MetricTipsShared      AchievementMetric = "tips_shared"
	MetricWikiEdits       AchievementMetric = "wiki_edits"
	MetricLikesReceived   AchievementMetric = "likes_received"
	MetricLikesGiven      AchievementMetric = "likes_given"
	MetricTotalXP         AchievementMetric = "total_xp"
	MetricLevel           AchievementMetric = "level"
)

// Achievement is a definition row: a named badge with a declarative
// unlock condition (a metric crossing a threshold) and an XP reward.
type Achievement struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Key         string            `gorm:"not null;uniqueIndex" json:"key"`
	Name        string            `gorm:"not null" json:"name"`
	Description string            `gorm:"type:text" json:"description"`
	Icon        string            `json:"icon"`
	Metric      AchievementMetric `gorm:"type:varchar(32);not null" json:"metric"`
	Threshold   int               `gorm:"not null" json:"threshold"`
	XPReward    int               `gorm:"not null;default:0" json:"xp_reward"`
	Secret      bool              `gorm:"not null;default:false" json:"secret"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// UserAchievement records a single unlock. The composite unique index
// guarantees at most one row per (user, achievement) pair no matter how
// many evaluation passes race.
type UserAchievement struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uint        `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID" json:"achievement"`
	UnlockedAt    time.Time   `gorm:"not null" json:"unlocked_at"`
}

// TableName specifies the table name for GORM
func (UserAchievement) TableName() string {
	return "user_achievements"
}

// AchievementProgress pairs a definition with how far a user is toward it.
// Percent is clamped to 0-100 and is always 100 once unlocked.
type AchievementProgress struct {
	Achievement Achievement `json:"achievement"`
	Current     int         `json:"current"`
	Percent     float64     `json:"percent"`
	Unlocked    bool        `json:"unlocked"`
	UnlockedAt  *time.Time  `json:"unlocked_at,omitempty"`
}
