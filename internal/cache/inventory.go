package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	PostKeyPrefix        = "post:%d"
	GameKeyPrefix        = "game:%s"
	LeaderboardKeyPrefix = "leaderboard:%s:%d"
	ProgressKeyPrefix    = "achievements:progress:%d"
)

const (
	UserTTL        = 5 * time.Minute
	PostTTL        = 30 * time.Minute
	GameTTL        = 10 * time.Minute
	LeaderboardTTL = 30 * time.Second
	ProgressTTL    = time.Minute
	ListTTL        = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func GameKey(slug string) string {
	return fmt.Sprintf(GameKeyPrefix, slug)
}

func LeaderboardKey(period string, limit int) string {
	return fmt.Sprintf(LeaderboardKeyPrefix, period, limit)
}

func ProgressKey(userID uint) string {
	return fmt.Sprintf(ProgressKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, ProgressKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateGame(ctx context.Context, slug string) {
	Invalidate(ctx, GameKey(slug))
}

// InvalidateLeaderboards drops every cached leaderboard page. XP awards
// land often enough that a short TTL does most of the work; this is only
// called from admin grant paths where staleness would be visible.
func InvalidateLeaderboards(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "leaderboard:*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
