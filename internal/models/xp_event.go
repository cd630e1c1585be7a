// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// XPReason identifies why experience was awarded.
type XPReason string

const (
	XPReasonPostApproved XPReason = "post_approved"
	XPReasonComment      XPReason = "comment"
	XPReasonReview       XPReason = "review"
	XPReasonTip          XPReason = "tip"
	XPReasonWikiEdit     XPReason = "wiki_edit"
	XPReasonLikeReceived XPReason = "like_received"
	XPReasonAchievement  XPReason = "achievement"
	XPReasonAdminGrant   XPReason = "admin_grant"
)

// XP awards per activity. Review, tip and wiki contributions are worth
// more than feed activity to reward substantive content.
const (
	XPForPost     = 10
	XPForComment  = 5
	XPForReview   = 20
	XPForTip      = 20
	XPForWikiEdit = 25
	// XPForLikeReceived goes to the author of the liked content.
	XPForLikeReceived = 5
	// XPForLikeReceivedRich applies when the liked content is a review,
	// tip or wiki entry.
	XPForLikeReceivedRich = 10
)

// XPForLike returns the award the author of the liked target receives.
func XPForLike(target TargetType) int {
	switch target {
	case TargetReview, TargetTip, TargetWiki:
		return XPForLikeReceivedRich
	default:
		return XPForLikeReceived
	}
}

// XPEvent is an append-only ledger row for a single XP award. Window
// leaderboards (weekly, monthly) are computed by summing these rows.
type XPEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_xp_events_user_time" json:"user_id"`
	Amount    int       `gorm:"not null" json:"amount"`
	Reason    XPReason  `gorm:"type:varchar(32);not null" json:"reason"`
	RefType   string    `gorm:"type:varchar(20)" json:"ref_type,omitempty"`
	RefID     uint      `json:"ref_id,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_xp_events_user_time" json:"created_at"`
}

// TableName specifies the table name for GORM
func (XPEvent) TableName() string {
	return "xp_events"
}
