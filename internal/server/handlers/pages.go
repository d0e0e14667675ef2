package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/welbinator/therepo/internal/database"
	"github.com/welbinator/therepo/internal/models"
	"github.com/welbinator/therepo/internal/services"
)

// HomePage lists published submissions and shows the post-submit notice.
func HomePage(c *fiber.Ctx) error {
	var subs []models.Submission
	if err := database.DB.Where("status = ?", models.StatusPublished).
		Order("id desc").Limit(20).Find(&subs).Error; err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("home", fiber.Map{
		"title":       "The Repo",
		"submissions": subs,
		"submitted":   c.Query("submission") == "success",
	})
}

// SubmissionPage shows one listing; it is the edit workflow's redirect target.
func SubmissionPage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.ErrBadRequest
	}
	var sub models.Submission
	if err := database.DB.Preload("FeaturedImage").First(&sub, uint(id)).Error; err != nil {
		return fiber.ErrNotFound
	}
	meta, err := services.MetaMap(database.DB, sub.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	cats, err := services.TermNames(database.DB, sub.ID, sub.CategoryTaxonomy())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	tags, err := services.TermNames(database.DB, sub.ID, sub.TagTaxonomy())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("submission", fiber.Map{
		"title":      sub.Title,
		"submission": sub,
		"meta":       meta,
		"categories": cats,
		"tags":       tags,
		"updated":    c.Query("updated") == "true",
	})
}
