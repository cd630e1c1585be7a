// Command main runs the database seeder for GameHaqqs.
package main

import (
	"flag"
	"log"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/config"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/database"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numGames := flag.Int("games", 20, "Minimum number of catalog games")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster runs")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d games, %d posts, clean=%v\n", *numUsers, *numGames, *numPosts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumGames:    *numGames,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
