// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tipCategories are the categories demo tips rotate through.
var tipCategories = []string{"combat", "exploration", "builds", "economy", "secrets"}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Factory{db: db, opts: opts, rng: rng, nextID: 1000}
}

// pastTime returns a timestamp spread over the configured MaxDays window so
// seeded content does not all land on the same instant.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Role:     models.RoleUser,
		XP:       f.rng.Intn(2500),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGame constructs and persists a `models.Game` catalog entry.
func (f *Factory) CreateGame(overrides ...func(*models.Game)) (*models.Game, error) {
	title := fmt.Sprintf("%s %s", gofakeit.HipsterWord(), gofakeit.NounAbstract())
	game := &models.Game{
		Title:       title,
		Slug:        service.Slugify(title) + fmt.Sprintf("-%d", gofakeit.Number(10, 999)),
		Description: gofakeit.Paragraph(1, 2, 8, "\n"),
		Genre:       gofakeit.RandomString([]string{"rpg", "shooter", "strategy", "platformer", "roguelike", "simulation"}),
		Developer:   gofakeit.Company(),
		ReleaseYear: gofakeit.Number(1995, 2025),
		CoverURL:    fmt.Sprintf("https://picsum.photos/seed/%s/600/800", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(game)
	}

	if f.opts.DryRun {
		f.nextID++
		game.ID = f.nextID
		log.Printf("[dry-run] CreateGame: %s", game.Slug)
		return game, nil
	}

	if err := f.db.Create(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

// BuildPost constructs a post struct without persisting it. Useful for
// batching. Roughly 80% of generated posts are approved, the rest split
// between pending and declined so the moderation queue has material.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:  user.ID,
	}
	post.CreatedAt = f.pastTime()

	switch roll := f.rng.Intn(10); {
	case roll < 8:
		post.Status = models.PostStatusApproved
	case roll == 8:
		post.Status = models.PostStatusPending
	default:
		post.Status = models.PostStatusDeclined
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, overrides...)

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost: status=%s user=%d title=%q", post.Status, post.UserID, post.Title)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePostsBatch persists multiple posts in a single DB call when possible.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreatePostsBatch: %d posts (no DB write)", len(posts))
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		PostID:  post.ID,
	}
	comment.CreatedAt = f.pastTime()

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReview constructs and persists a review of `game` by `user`.
// Ratings skew positive the way real review sections do.
func (f *Factory) CreateReview(user *models.User, game *models.Game, overrides ...func(*models.Review)) (*models.Review, error) {
	ratings := []int{3, 4, 4, 5, 5, 5, 2, 1}
	review := &models.Review{
		Title:  gofakeit.Sentence(4),
		Body:   gofakeit.Paragraph(1, 3, 6, "\n"),
		Rating: ratings[f.rng.Intn(len(ratings))],
		UserID: user.ID,
		GameID: game.ID,
	}
	review.CreatedAt = f.pastTime()

	for _, override := range overrides {
		override(review)
	}

	if f.opts.DryRun {
		f.nextID++
		review.ID = f.nextID
		return review, nil
	}

	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// CreateTip constructs and persists a gameplay tip for `game` by `user`.
func (f *Factory) CreateTip(user *models.User, game *models.Game, overrides ...func(*models.Tip)) (*models.Tip, error) {
	tip := &models.Tip{
		Title:    gofakeit.Sentence(4),
		Body:     gofakeit.Paragraph(1, 2, 5, "\n"),
		Category: tipCategories[f.rng.Intn(len(tipCategories))],
		UserID:   user.ID,
		GameID:   game.ID,
	}
	tip.CreatedAt = f.pastTime()

	for _, override := range overrides {
		override(tip)
	}

	if f.opts.DryRun {
		f.nextID++
		tip.ID = f.nextID
		return tip, nil
	}

	if err := f.db.Create(tip).Error; err != nil {
		return nil, err
	}
	return tip, nil
}

// CreateWikiEntry constructs and persists a wiki page for `game` by `user`.
func (f *Factory) CreateWikiEntry(user *models.User, game *models.Game, overrides ...func(*models.WikiEntry)) (*models.WikiEntry, error) {
	title := fmt.Sprintf("%s %s", gofakeit.HipsterWord(), gofakeit.Noun())
	entry := &models.WikiEntry{
		Title:  title,
		Slug:   service.Slugify(title) + fmt.Sprintf("-%d", gofakeit.Number(10, 999)),
		Body:   gofakeit.Paragraph(2, 4, 8, "\n"),
		UserID: user.ID,
		GameID: game.ID,
	}
	entry.CreatedAt = f.pastTime()

	for _, override := range overrides {
		override(entry)
	}

	if f.opts.DryRun {
		f.nextID++
		entry.ID = f.nextID
		return entry, nil
	}

	if err := f.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateLike persists a like from `user` on the given target. Duplicate
// likes hit the composite unique index and are reported as errors.
func (f *Factory) CreateLike(user *models.User, target models.TargetRef) error {
	if f.opts.DryRun {
		return nil
	}
	like := &models.Like{
		UserID:     user.ID,
		TargetType: target.Type,
		TargetID:   target.ID,
	}
	return f.db.Create(like).Error
}
