package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/welbinator/therepo/internal/database"
	"github.com/welbinator/therepo/internal/models"
	"github.com/welbinator/therepo/internal/services"
)

// AuthRequired checks JWT from Cookie("auth_token") or Authorization: Bearer
// and loads the user into c.Locals("user").
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("auth_token")
		if token == "" {
			authz := c.Get("Authorization")
			if strings.HasPrefix(authz, "Bearer ") {
				token = strings.TrimPrefix(authz, "Bearer ")
			}
		}
		if token == "" {
			return c.Redirect("/login")
		}
		claims, err := services.ParseToken(token)
		if err != nil {
			return c.Redirect("/login")
		}
		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil || !user.IsActive {
			return c.Redirect("/login")
		}
		c.Locals("user", &user)
		c.Locals("claims", claims)
		return c.Next()
	}
}

// APIAuth authenticates JSON API requests. Unlike AuthRequired it answers
// failures with 401 instead of a login redirect.
func APIAuth(c *fiber.Ctx) error {
	token := c.Cookies("auth_token")
	if token == "" {
		authz := c.Get("Authorization")
		if strings.HasPrefix(authz, "Bearer ") {
			token = strings.TrimPrefix(authz, "Bearer ")
		}
	}
	if token == "" {
		return fiber.ErrUnauthorized
	}
	claims, err := services.ParseToken(token)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	var user models.User
	if err := database.DB.First(&user, claims.UserID).Error; err != nil || !user.IsActive {
		return fiber.ErrUnauthorized
	}
	c.Locals("user", &user)
	c.Locals("claims", claims)
	return c.Next()
}

// CurrentUser returns the authenticated user loaded by AuthRequired.
func CurrentUser(c *fiber.Ctx) *models.User {
	if u, ok := c.Locals("user").(*models.User); ok {
		return u
	}
	return nil
}
