package submission

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/welbinator/therepo/internal/models"
	"github.com/welbinator/therepo/internal/services"
)

// Create persists a validated draft as a new pending submission and attaches
// its metadata, terms and images. If the base insert fails nothing else runs;
// later steps are not transactional and already-applied writes stay applied.
func Create(db *gorm.DB, d *Draft, authorID uint, featuredImageID *uint, coverImageURL string) (*models.Submission, error) {
	sub := models.Submission{
		Kind:        d.Kind,
		Title:       d.Title,
		Description: d.Description,
		Excerpt:     TrimWords(d.Description, ExcerptWords),
		Status:      models.StatusPending,
		AuthorID:    authorID,
	}
	if err := db.Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	if err := services.SetMeta(db, sub.ID, models.MetaLatestReleaseURL, d.LatestReleaseURL); err != nil {
		return nil, fmt.Errorf("save release URL: %w", err)
	}
	if err := services.SetMeta(db, sub.ID, models.MetaHostedOnGitHub, d.HostedOnGitHub); err != nil {
		return nil, fmt.Errorf("save hosting flag: %w", err)
	}
	if d.HostedOnGitHub == "yes" {
		if err := services.SetMeta(db, sub.ID, models.MetaGitHubUsername, d.GitHubUsername); err != nil {
			return nil, fmt.Errorf("save GitHub username: %w", err)
		}
		if err := services.SetMeta(db, sub.ID, models.MetaGitHubRepo, d.GitHubRepo); err != nil {
			return nil, fmt.Errorf("save GitHub repo: %w", err)
		}
	} else {
		if err := services.SetMeta(db, sub.ID, models.MetaDownloadURL, d.DownloadURL); err != nil {
			return nil, fmt.Errorf("save download URL: %w", err)
		}
	}

	if len(d.Categories) > 0 {
		if err := services.AssignTerms(db, sub.ID, sub.CategoryTaxonomy(), d.Categories); err != nil {
			return nil, err
		}
	}
	if len(d.Tags) > 0 {
		if err := services.AssignTerms(db, sub.ID, sub.TagTaxonomy(), d.Tags); err != nil {
			return nil, err
		}
	}

	if coverImageURL != "" {
		if err := services.SetMeta(db, sub.ID, models.MetaCoverImageURL, coverImageURL); err != nil {
			return nil, fmt.Errorf("save cover image URL: %w", err)
		}
	}
	if featuredImageID != nil {
		if err := db.Model(&sub).Update("featured_image_id", *featuredImageID).Error; err != nil {
			return nil, fmt.Errorf("set featured image: %w", err)
		}
	}
	return &sub, nil
}

// Edit mutates an existing submission owned by the requester. Only title and
// description change on the record itself; status, kind and excerpt stay as
// they are. GitHub username, repo and download URL meta are overwritten from
// the submitted values regardless of the hosting flag, and the stored
// latest-release URL is left untouched. Both carried over from the original
// workflow.
//
// A replacement featured image is not part of Edit: it uploads after these
// writes commit, so the caller applies it last via SetFeaturedImage. A failed
// upload leaves everything written here in place.
func Edit(db *gorm.DB, d *EditDraft, requesterID uint) (*models.Submission, error) {
	sub, err := Owned(db, d.SubmissionID, requesterID)
	if err != nil {
		return nil, err
	}

	sub.Title = d.Title
	sub.Description = d.Description
	if err := db.Model(sub).Updates(map[string]interface{}{
		"title":       sub.Title,
		"description": sub.Description,
	}).Error; err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}

	if err := services.SetMeta(db, sub.ID, models.MetaGitHubUsername, d.GitHubUsername); err != nil {
		return nil, fmt.Errorf("save GitHub username: %w", err)
	}
	if err := services.SetMeta(db, sub.ID, models.MetaGitHubRepo, d.GitHubRepo); err != nil {
		return nil, fmt.Errorf("save GitHub repo: %w", err)
	}
	if err := services.SetMeta(db, sub.ID, models.MetaDownloadURL, d.DownloadURL); err != nil {
		return nil, fmt.Errorf("save download URL: %w", err)
	}

	if err := services.AssignTerms(db, sub.ID, sub.CategoryTaxonomy(), d.Categories); err != nil {
		return nil, err
	}
	return sub, nil
}

// SetFeaturedImage points a submission at a stored attachment.
func SetFeaturedImage(db *gorm.DB, sub *models.Submission, attachmentID uint) error {
	if err := db.Model(sub).Update("featured_image_id", attachmentID).Error; err != nil {
		return fmt.Errorf("set featured image: %w", err)
	}
	return nil
}

// Owned loads a submission and verifies the requester is its author.
func Owned(db *gorm.DB, id, requesterID uint) (*models.Submission, error) {
	var sub models.Submission
	if err := db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sub.AuthorID != requesterID {
		return nil, ErrNotOwner
	}
	return &sub, nil
}

// ListByAuthor returns a user's submissions, newest first.
func ListByAuthor(db *gorm.DB, authorID uint) ([]models.Submission, error) {
	var subs []models.Submission
	err := db.Where("author_id = ?", authorID).
		Where("status IN ?", []string{models.StatusPublished, models.StatusPending}).
		Order("id desc").Find(&subs).Error
	return subs, err
}
