// Package testutil provides shared test fixtures for backend tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/database"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// NewSQLiteDB opens a fresh in-memory SQLite database migrated with the full
// schema. Each call gets its own database so parallel tests do not share
// state.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// CreateUser persists a user with sensible defaults, applying any overrides.
// The password for every fixture user is "Sup3rSecret!pass".
func CreateUser(t *testing.T, db *gorm.DB, overrides ...func(*models.User)) *models.User {
	t.Helper()

	n := dbCounter.Add(1)
	hashed, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret!pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &models.User{
		Username: fmt.Sprintf("player%d", n),
		Email:    fmt.Sprintf("player%d@example.com", n),
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// CreateGame persists a game catalog row with sensible defaults.
func CreateGame(t *testing.T, db *gorm.DB, overrides ...func(*models.Game)) *models.Game {
	t.Helper()

	n := dbCounter.Add(1)
	game := &models.Game{
		Title:       fmt.Sprintf("Test Game %d", n),
		Slug:        fmt.Sprintf("test-game-%d", n),
		Genre:       "rpg",
		Developer:   "Test Studio",
		ReleaseYear: 2020,
	}
	for _, override := range overrides {
		override(game)
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("create game: %v", err)
	}
	return game
}

// CreatePost persists an approved post by the given user.
func CreatePost(t *testing.T, db *gorm.DB, userID uint, overrides ...func(*models.Post)) *models.Post {
	t.Helper()

	n := dbCounter.Add(1)
	post := &models.Post{
		Title:     fmt.Sprintf("Post %d", n),
		Content:   "Some discussion-worthy content.",
		UserID:    userID,
		Status:    models.PostStatusApproved,
		CreatedAt: time.Now(),
	}
	for _, override := range overrides {
		override(post)
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}
