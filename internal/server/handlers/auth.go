package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/welbinator/therepo/internal/database"
	"github.com/welbinator/therepo/internal/models"
	"github.com/welbinator/therepo/internal/services"
	"github.com/welbinator/therepo/internal/utils"
)

func LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"title": "Log In"})
}

func LoginSubmit(c *fiber.Ctx) error {
	type form struct {
		Email    string `form:"email"`
		Password string `form:"password"`
	}
	var f form
	if err := c.BodyParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form")
	}
	var user models.User
	if err := database.DB.Where("email = ?", f.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"error": "Wrong email or password."})
	}
	if !user.CheckPassword(f.Password) || !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"error": "Wrong email or password."})
	}
	token, err := services.GenerateUserToken(user.ID, user.Role, 12*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("token error")
	}
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(12 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.Redirect("/")
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{Name: "auth_token", Value: "", Expires: time.Now().Add(-1 * time.Hour), HTTPOnly: true, Path: "/"})
	return c.Redirect("/login")
}

func RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{"title": "Register"})
}

func RegisterSubmit(c *fiber.Ctx) error {
	type form struct {
		Username string `form:"username"`
		Email    string `form:"email"`
		Password string `form:"password"`
	}
	var f form
	if err := c.BodyParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form")
	}
	f.Username = utils.SanitizeText(f.Username)
	f.Email = utils.SanitizeText(f.Email)
	if f.Username == "" || f.Email == "" || len(f.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
			"error": "Username, email and a password of at least 8 characters are required.",
		})
	}
	user := models.User{Username: f.Username, Email: f.Email, Role: models.RoleUser, IsActive: true}
	if err := user.SetPassword(f.Password); err != nil {
		return fiber.ErrInternalServerError
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
			"error": "That username or email is already taken.",
		})
	}
	return c.Redirect("/login")
}
