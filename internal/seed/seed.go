package seed

import (
	"fmt"
	"log"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumGames    int
	NumPosts    int
	ShouldClean bool
	// DryRun builds entities without touching the database.
	DryRun bool
	// SkipBcrypt stores a plaintext placeholder password for faster dev runs.
	SkipBcrypt bool
	// MaxDays bounds how far back generated timestamps spread. Defaults to 90.
	MaxDays int
}

// Seed populates the database with demo data: users, a game catalog, posts
// across all moderation states, comments, reviews, tips, wiki pages and
// likes. XP is stored directly on users rather than replayed through the
// ledger, which is fine for demo purposes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("seeding database: %d users, %d games, %d posts", opts.NumUsers, opts.NumGames, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	// Baseline catalogs first so generated content has something to hang off.
	if err := Games(db); err != nil {
		return fmt.Errorf("failed to seed built-in games: %w", err)
	}
	if err := Achievements(db); err != nil {
		return fmt.Errorf("failed to seed achievements: %w", err)
	}

	f := NewFactory(db, opts)

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	games, err := loadGames(db, f, opts.NumGames)
	if err != nil {
		return fmt.Errorf("failed to create games: %w", err)
	}
	log.Printf("%d games available", len(games))

	posts, err := createPosts(f, users, games, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createEngagement(f, users, games, posts); err != nil {
		return fmt.Errorf("failed to create engagement data: %w", err)
	}

	log.Println("database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("clearing existing data")
	sql := `TRUNCATE TABLE likes, comments, posts, reviews, tips, wiki_entries,
		notifications, xp_events, user_achievements, moderator_actions, users
		RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include a known admin and moderator for manual testing.
	if count >= 2 {
		staff := []struct {
			username string
			role     models.Role
		}{
			{"admin", models.RoleAdmin},
			{"mod", models.RoleModerator},
		}
		for _, st := range staff {
			st := st
			user, err := f.CreateUser(func(u *models.User) {
				u.Username = st.username
				u.Email = fmt.Sprintf("%s@example.com", st.username)
				u.Role = st.role
				u.XP = 0
			})
			if err != nil {
				log.Printf("failed to create %s user: %v", st.username, err)
				continue
			}
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("created %d users...", i)
		}
	}

	return users, nil
}

// loadGames returns the full catalog, generating extra entries if the
// built-ins fall short of the requested count.
func loadGames(db *gorm.DB, f *Factory, count int) ([]*models.Game, error) {
	var existing []*models.Game
	if !f.opts.DryRun {
		if err := db.Find(&existing).Error; err != nil {
			return nil, err
		}
	}

	for len(existing) < count {
		game, err := f.CreateGame()
		if err != nil {
			return nil, err
		}
		existing = append(existing, game)
	}
	return existing, nil
}

func createPosts(f *Factory, users []*models.User, games []*models.Game, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		user := users[f.rng.Intn(len(users))]
		post := f.BuildPost(user)

		// Roughly half the posts reference a catalog game.
		if len(games) > 0 && f.rng.Intn(2) == 0 {
			gameID := games[f.rng.Intn(len(games))].ID
			post.GameID = &gameID
		}
		posts = append(posts, post)
	}

	// Chunked batch insert keeps large seeds fast.
	const chunk = 200
	for start := 0; start < len(posts); start += chunk {
		end := start + chunk
		if end > len(posts) {
			end = len(posts)
		}
		batch := posts[start:end]
		if err := f.CreatePostsBatch(batch); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

// createEngagement layers comments, reviews, tips, wiki pages and likes on
// top of the seeded content so feeds and leaderboards look lived-in.
func createEngagement(f *Factory, users []*models.User, games []*models.Game, posts []*models.Post) error {
	if len(users) == 0 {
		return nil
	}

	for _, post := range posts {
		if post.Status != models.PostStatusApproved {
			continue
		}

		for i := f.rng.Intn(4); i > 0; i-- {
			commenter := users[f.rng.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return err
			}
		}

		for i := f.rng.Intn(6); i > 0; i-- {
			liker := users[f.rng.Intn(len(users))]
			if liker.ID == post.UserID {
				continue
			}
			// Duplicate likes trip the unique index; skip them.
			_ = f.CreateLike(liker, models.TargetRef{Type: models.TargetPost, ID: post.ID})
		}
	}

	for _, game := range games {
		for i := f.rng.Intn(3); i > 0; i-- {
			author := users[f.rng.Intn(len(users))]
			// One review per user per game; duplicates are skipped.
			_, _ = f.CreateReview(author, game)
		}
		for i := f.rng.Intn(3); i > 0; i-- {
			author := users[f.rng.Intn(len(users))]
			if _, err := f.CreateTip(author, game); err != nil {
				return err
			}
		}
		if f.rng.Intn(2) == 0 {
			author := users[f.rng.Intn(len(users))]
			if _, err := f.CreateWikiEntry(author, game); err != nil {
				return err
			}
		}
	}

	return nil
}
