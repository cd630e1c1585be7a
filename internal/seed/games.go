package seed

import (
	"fmt"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/service"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInGame is a permanent catalog entry shipped with the platform.
type BuiltInGame struct {
	Title       string
	Genre       string
	Developer   string
	ReleaseYear int
	Description string
}

// BuiltInGames defines the starter game catalog.
var BuiltInGames = []BuiltInGame{
	{Title: "Hollow Knight", Genre: "metroidvania", Developer: "Team Cherry", ReleaseYear: 2017, Description: "Hand-drawn action adventure beneath the ruined kingdom of Hallownest."},
	{Title: "Elden Ring", Genre: "action-rpg", Developer: "FromSoftware", ReleaseYear: 2022, Description: "Open-world action RPG set in the Lands Between."},
	{Title: "Stardew Valley", Genre: "simulation", Developer: "ConcernedApe", ReleaseYear: 2016, Description: "Farming life sim with relationships, mining, and seasons."},
	{Title: "Hades", Genre: "roguelike", Developer: "Supergiant Games", ReleaseYear: 2020, Description: "Rogue-like dungeon crawler about escaping the underworld."},
	{Title: "Celeste", Genre: "platformer", Developer: "Extremely OK Games", ReleaseYear: 2018, Description: "Precision platformer about climbing a mountain."},
	{Title: "The Witcher 3: Wild Hunt", Genre: "action-rpg", Developer: "CD Projekt Red", ReleaseYear: 2015, Description: "Story-driven open world RPG following Geralt of Rivia."},
	{Title: "Factorio", Genre: "strategy", Developer: "Wube Software", ReleaseYear: 2020, Description: "Automation and factory building on an alien planet."},
	{Title: "Slay the Spire", Genre: "roguelike", Developer: "Mega Crit", ReleaseYear: 2019, Description: "Deck-building roguelike climb through a living spire."},
	{Title: "Doom Eternal", Genre: "shooter", Developer: "id Software", ReleaseYear: 2020, Description: "Fast-paced demon-slaying first person shooter."},
	{Title: "Portal 2", Genre: "puzzle", Developer: "Valve", ReleaseYear: 2011, Description: "Physics puzzles with a portal gun and a passive-aggressive AI."},
	{Title: "Baldur's Gate 3", Genre: "rpg", Developer: "Larian Studios", ReleaseYear: 2023, Description: "Party-based RPG grounded in Dungeons and Dragons."},
	{Title: "Sekiro: Shadows Die Twice", Genre: "action", Developer: "FromSoftware", ReleaseYear: 2019, Description: "Shinobi action with demanding posture-based combat."},
	{Title: "Terraria", Genre: "sandbox", Developer: "Re-Logic", ReleaseYear: 2011, Description: "2D sandbox of digging, building, and boss fights."},
	{Title: "Outer Wilds", Genre: "exploration", Developer: "Mobius Digital", ReleaseYear: 2019, Description: "Space exploration mystery trapped in a 22 minute time loop."},
	{Title: "Disco Elysium", Genre: "rpg", Developer: "ZA/UM", ReleaseYear: 2019, Description: "Detective RPG where your skills argue with you."},
	{Title: "Sid Meier's Civilization VI", Genre: "strategy", Developer: "Firaxis Games", ReleaseYear: 2016, Description: "Turn-based empire building through the ages."},
}

// Games seeds the permanent starter catalog. Rows are upserted by slug so
// running it repeatedly is safe.
func Games(db *gorm.DB) error {
	for _, item := range BuiltInGames {
		game := models.Game{
			Title:       item.Title,
			Slug:        service.Slugify(item.Title),
			Description: item.Description,
			Genre:       item.Genre,
			Developer:   item.Developer,
			ReleaseYear: item.ReleaseYear,
			CoverURL:    fmt.Sprintf("https://picsum.photos/seed/%s/600/800", service.Slugify(item.Title)),
		}

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "genre", "developer", "release_year", "updated_at"}),
		}).Create(&game).Error; err != nil {
			return fmt.Errorf("seed built-in game %s: %w", game.Slug, err)
		}
	}

	return nil
}

// Achievements seeds the baseline achievement catalog for environments
// that do not run SQL migrations (sqlite development databases, tests).
func Achievements(db *gorm.DB) error {
	for _, def := range BaselineAchievements() {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&def).Error; err != nil {
			return fmt.Errorf("seed achievement %s: %w", def.Key, err)
		}
	}
	return nil
}

// BaselineAchievements mirrors the catalog installed by the baseline
// migration, for callers that need it as data.
func BaselineAchievements() []models.Achievement {
	return []models.Achievement{
		{Key: "first-post", Name: "Breaking the Ice", Description: "Get your first post approved", Icon: "icons/first-post.svg", Metric: models.MetricPostsApproved, Threshold: 1, XPReward: 10},
		{Key: "prolific-poster", Name: "Prolific Poster", Description: "Get ten posts approved", Icon: "icons/prolific-poster.svg", Metric: models.MetricPostsApproved, Threshold: 10, XPReward: 50},
		{Key: "first-comment", Name: "Conversationalist", Description: "Write your first comment", Icon: "icons/first-comment.svg", Metric: models.MetricCommentsWritten, Threshold: 1, XPReward: 5},
		{Key: "chatterbox", Name: "Chatterbox", Description: "Write fifty comments", Icon: "icons/chatterbox.svg", Metric: models.MetricCommentsWritten, Threshold: 50, XPReward: 50},
		{Key: "first-review", Name: "Critic", Description: "Write your first game review", Icon: "icons/first-review.svg", Metric: models.MetricReviewsWritten, Threshold: 1, XPReward: 20},
		{Key: "seasoned-critic", Name: "Seasoned Critic", Description: "Write ten game reviews", Icon: "icons/seasoned-critic.svg", Metric: models.MetricReviewsWritten, Threshold: 10, XPReward: 100},
		{Key: "helpful-hand", Name: "Helpful Hand", Description: "Share five tips", Icon: "icons/helpful-hand.svg", Metric: models.MetricTipsShared, Threshold: 5, XPReward: 50},
		{Key: "lorekeeper", Name: "Lorekeeper", Description: "Make ten wiki edits", Icon: "icons/lorekeeper.svg", Metric: models.MetricWikiEdits, Threshold: 10, XPReward: 100},
		{Key: "crowd-favorite", Name: "Crowd Favorite", Description: "Receive one hundred likes", Icon: "icons/crowd-favorite.svg", Metric: models.MetricLikesReceived, Threshold: 100, XPReward: 100},
		{Key: "supporter", Name: "Supporter", Description: "Give fifty likes", Icon: "icons/supporter.svg", Metric: models.MetricLikesGiven, Threshold: 50, XPReward: 25},
		{Key: "rising-star", Name: "Rising Star", Description: "Reach level 5", Icon: "icons/rising-star.svg", Metric: models.MetricLevel, Threshold: 5},
		{Key: "veteran", Name: "Veteran", Description: "Reach level 20", Icon: "icons/veteran.svg", Metric: models.MetricLevel, Threshold: 20, Secret: true},
	}
}
