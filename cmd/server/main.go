// Command main is the entry point for the GameHaqqs backend server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/config"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/server"
)

// @title GameHaqqs API
// @version 1.0
// @description Gaming community API with posts, reviews, tips, wiki pages, XP and achievements
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@gamehaqqs.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8375
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create server with dependency injection
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start blocks until the listener closes.
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
