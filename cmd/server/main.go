package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/welbinator/therepo/internal/config"
	"github.com/welbinator/therepo/internal/database"
	"github.com/welbinator/therepo/internal/server"
	"github.com/welbinator/therepo/internal/services"
)

func main() {
	// Load environment variables
	if err := config.Load(); err != nil {
		log.Fatalf("config load: %v", err)
	}

	// Init DB
	if err := database.Connect(config.Current.DatabaseURL); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	// Auto-migrate models and seed admin
	if err := database.AutoMigrateAndSeed(); err != nil {
		log.Fatalf("migration/seed failed: %v", err)
	}

	// Template engine
	engine := html.New("web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layout",
		ServerHeader: "TheRepo",
		AppName:      "The Repo",
		BodyLimit:    50 * 1024 * 1024, // image uploads
	})

	// Static assets
	app.Static("/static", "public")

	// Setup routes
	server.RegisterRoutes(app)

	// Background release refresher
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	services.StartReleaseRefresher(ctx)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
