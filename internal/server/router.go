package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/welbinator/therepo/internal/config"
	"github.com/welbinator/therepo/internal/server/handlers"
	"github.com/welbinator/therepo/internal/server/middleware"
)

func RegisterRoutes(app *fiber.App) {
	// Serve uploaded files
	app.Static("/uploads", "./"+config.Current.UploadDir)

	// Auth
	app.Get("/login", handlers.LoginPage)
	app.Post("/login", handlers.LoginSubmit)
	app.Get("/logout", handlers.Logout)
	app.Get("/register", handlers.RegisterPage)
	app.Post("/register", handlers.RegisterSubmit)

	// Public pages
	app.Get("/", handlers.HomePage)

	// Submission workflows (login required)
	app.Get("/submit", middleware.AuthRequired(), handlers.SubmitPage)
	app.Post("/submit", middleware.AuthRequired(), handlers.SubmitCreate)
	// /submissions/edit must register before /submissions/:id
	app.Get("/submissions/edit", middleware.AuthRequired(), handlers.EditPage)
	app.Post("/submissions/edit", middleware.AuthRequired(), handlers.EditSubmit)
	app.Get("/submissions/:id", handlers.SubmissionPage)

	// JSON API (edit-form pre-population)
	api := app.Group("/api/v1")
	api.Get("/submissions/:id", middleware.APIAuth, handlers.SubmissionData)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "time": time.Now()})
	})
}
