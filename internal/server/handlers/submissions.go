package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/welbinator/therepo/internal/database"
	"github.com/welbinator/therepo/internal/models"
	"github.com/welbinator/therepo/internal/server/middleware"
	"github.com/welbinator/therepo/internal/services"
	"github.com/welbinator/therepo/internal/submission"
)

// SubmitPage renders the create-submission form.
func SubmitPage(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	nonce, err := services.CreateNonce(services.ActionSubmitListing, user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("submit", fiber.Map{
		"title": "Submit a Plugin or Theme",
		"nonce": nonce,
		"user":  user,
	})
}

// SubmitCreate handles the create workflow: nonce, validate, upload, persist,
// redirect. Any failure halts the request with the violated rule.
func SubmitCreate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := services.VerifyNonce(c.FormValue("nonce"), services.ActionSubmitListing, user.ID); err != nil {
		return c.Status(fiber.StatusForbidden).SendString("Error: Invalid form submission.")
	}

	in := submission.CreateInput{
		Kind:           c.FormValue("type"),
		Name:           c.FormValue("name"),
		Description:    c.FormValue("description"),
		HostedOnGitHub: c.FormValue("hosted_on_github"),
		GitHubUsername: c.FormValue("github_username"),
		GitHubRepo:     c.FormValue("github_repo"),
		DownloadURL:    c.FormValue("download_url"),
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		in.Categories = form.Value["categories[]"]
		in.Tags = form.Value["tags[]"]
	}
	if fh, err := c.FormFile("featured_image"); err == nil {
		in.FeaturedImage = fh
	}
	if fh, err := c.FormFile("cover_image"); err == nil {
		in.CoverImage = fh
	}

	draft, err := submission.ParseCreate(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Error: " + err.Error())
	}

	// Uploads run before the base record is created, as the original
	// workflow did. An upload error is fatal; a later create error can
	// leave stored files behind.
	att, err := services.SaveFeaturedImage(database.DB, in.FeaturedImage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error uploading featured image: " + err.Error())
	}
	coverURL := ""
	if in.CoverImage != nil && in.CoverImage.Filename != "" {
		coverURL, err = services.SaveCoverImage(in.CoverImage)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Error uploading cover image: " + err.Error())
		}
	}

	sub, err := submission.Create(database.DB, draft, user.ID, &att.ID, coverURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error: Unable to create the submission.")
	}

	if err := services.SendSubmissionNotice(context.Background(), sub); err != nil {
		log.Printf("moderation notice: %v", err)
	}
	return c.Redirect("/?submission=success")
}

// EditPage renders the edit form with the requester's own submissions.
func EditPage(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	subs, err := submission.ListByAuthor(database.DB, user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	nonce, err := services.CreateNonce(services.ActionEditListing, user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("edit", fiber.Map{
		"title":       "Edit Your Submissions",
		"nonce":       nonce,
		"user":        user,
		"submissions": subs,
	})
}

// EditSubmit handles the edit workflow. Ownership is checked before any field
// validation; the asymmetric edit-side rules live in the submission package.
func EditSubmit(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := services.VerifyNonce(c.FormValue("nonce"), services.ActionEditListing, user.ID); err != nil {
		return c.Status(fiber.StatusForbidden).SendString("Error: Invalid form submission.")
	}

	id, err := strconv.ParseUint(c.FormValue("submission_id"), 10, 32)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).SendString("Error: Invalid submission.")
	}
	if _, err := submission.Owned(database.DB, uint(id), user.ID); err != nil {
		return ownershipError(c, err)
	}

	in := submission.EditInput{
		SubmissionID:   uint(id),
		Name:           c.FormValue("name"),
		Description:    c.FormValue("description"),
		GitHubUsername: c.FormValue("github_username"),
		GitHubRepo:     c.FormValue("github_repo"),
		DownloadURL:    c.FormValue("download_url"),
		Categories:     c.FormValue("categories"),
	}
	draft, err := submission.ParseEdit(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Error: " + err.Error())
	}

	sub, err := submission.Edit(database.DB, draft, user.ID)
	if err != nil {
		if errors.Is(err, submission.ErrNotFound) || errors.Is(err, submission.ErrNotOwner) {
			return ownershipError(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error: Unable to update the submission.")
	}

	// The featured image uploads after the record, meta and term writes;
	// a failed upload aborts here and those writes stay committed.
	if fh, err := c.FormFile("featured_image"); err == nil && fh != nil && fh.Filename != "" {
		att, err := services.SaveFeaturedImage(database.DB, fh)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Error uploading featured image: " + err.Error())
		}
		if err := submission.SetFeaturedImage(database.DB, sub, att.ID); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Error: Unable to update the submission.")
		}
	}
	return c.Redirect(fmt.Sprintf("/submissions/%d?updated=true", id))
}

// SubmissionData backs the edit form's pre-population fetch. Shape matches
// what the form script expects: {success, data:{...}} with categories joined
// by commas.
func SubmissionData(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.ErrBadRequest
	}
	sub, err := submission.Owned(database.DB, uint(id), user.ID)
	if err != nil {
		return ownershipError(c, err)
	}
	meta, err := services.MetaMap(database.DB, sub.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	cats, err := services.TermNames(database.DB, sub.ID, sub.CategoryTaxonomy())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"name":             sub.Title,
			"github_username":  meta[models.MetaGitHubUsername],
			"github_repo":      meta[models.MetaGitHubRepo],
			"description":      sub.Description,
			"categories":       strings.Join(cats, ", "),
			"download_url":     meta[models.MetaDownloadURL],
			"hosted_on_github": meta[models.MetaHostedOnGitHub],
		},
	})
}

func ownershipError(c *fiber.Ctx, err error) error {
	if errors.Is(err, submission.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).SendString("Error: Submission not found.")
	}
	if errors.Is(err, submission.ErrNotOwner) {
		return c.Status(fiber.StatusForbidden).SendString("Error: Unauthorized access to this submission.")
	}
	return fiber.ErrInternalServerError
}
