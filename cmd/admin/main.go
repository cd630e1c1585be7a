// Package main provides staff role management utilities for GameHaqqs.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/cache"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/config"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/database"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin/main.go set-role <user_id> <user|moderator|admin>  - Assign a role")
		fmt.Println("  go run ./cmd/admin/main.go grant-xp <user_id> <amount> [note]         - Grant XP outside normal activity")
		fmt.Println("  go run ./cmd/admin/main.go list-staff                                 - List moderators and admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	cache.InitRedis(cfg.RedisURL)

	command := os.Args[1]

	switch command {
	case "set-role":
		if len(os.Args) < 4 {
			fmt.Println("Usage: go run ./cmd/admin/main.go set-role <user_id> <user|moderator|admin>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.Role(os.Args[3]))

	case "grant-xp":
		if len(os.Args) < 4 {
			fmt.Println("Usage: go run ./cmd/admin/main.go grant-xp <user_id> <amount> [note]")
			os.Exit(1)
		}
		grantXP(db, os.Args[2], os.Args[3], strings.Join(os.Args[4:], " "))

	case "list-staff":
		listStaff(db)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func setRole(db *gorm.DB, userID string, role models.Role) {
	if !role.Valid() {
		fmt.Printf("Invalid role %q, must be one of: user, moderator, admin\n", role)
		os.Exit(1)
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User with ID %s not found\n", userID)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}

	if user.Role == role {
		fmt.Printf("User %s (ID: %d) already has role %s\n", user.Username, user.ID, role)
		return
	}

	user.Role = role
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update role: %v", err)
	}

	fmt.Printf("Set role of %s (ID: %d) to %s\n", user.Username, user.ID, role)
}

// grantXP writes an admin_grant ledger event and bumps the user's XP.
// Leaderboard caches are dropped immediately; a manual grant is exactly the
// case where a 30 second stale window would be noticed.
func grantXP(db *gorm.DB, userIDArg, amountArg, note string) {
	userID, err := strconv.ParseUint(userIDArg, 10, 32)
	if err != nil {
		fmt.Printf("Invalid user ID %q\n", userIDArg)
		os.Exit(1)
	}
	amount, err := strconv.Atoi(amountArg)
	if err != nil || amount <= 0 {
		fmt.Printf("Invalid amount %q, must be a positive integer\n", amountArg)
		os.Exit(1)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	user, err := users.GetByID(ctx, uint(userID))
	if err != nil {
		fmt.Printf("User with ID %d not found\n", userID)
		os.Exit(1)
	}

	if err := users.AwardXP(ctx, user.ID, amount, models.XPReasonAdminGrant, "admin", 0); err != nil {
		log.Fatalf("Failed to grant XP: %v", err)
	}
	cache.InvalidateLeaderboards(ctx)

	fmt.Printf("Granted %d XP to %s (ID: %d)\n", amount, user.Username, user.ID)
	if note != "" {
		fmt.Printf("Note: %s\n", note)
	}
}

func listStaff(db *gorm.DB) {
	var staff []models.User
	if err := db.Where("role IN ?", []models.Role{models.RoleModerator, models.RoleAdmin}).
		Order("role, id").Find(&staff).Error; err != nil {
		log.Fatalf("Failed to fetch staff: %v", err)
	}

	if len(staff) == 0 {
		fmt.Println("No staff accounts found")
		return
	}

	fmt.Println("\nCurrent staff:")
	for _, member := range staff {
		fmt.Printf("ID: %d | Role: %-9s | Username: %s | Email: %s\n", member.ID, member.Role, member.Username, member.Email)
	}
}
