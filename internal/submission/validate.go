package submission

import (
	"errors"

	"github.com/welbinator/therepo/internal/models"
	"github.com/welbinator/therepo/internal/utils"
)

var (
	ErrFieldsRequired        = errors.New("type, name and description are required")
	ErrGitHubFieldsRequired  = errors.New("GitHub username and repository are required when hosted on GitHub")
	ErrDownloadURLRequired   = errors.New("download URL is required when not hosted on GitHub")
	ErrInvalidDownloadURL    = errors.New("download URL must be a valid absolute URL")
	ErrInvalidKind           = errors.New("type must be plugin or theme")
	ErrFeaturedImageRequired = errors.New("a featured image is required")
	ErrEditFieldsRequired    = errors.New("name, GitHub username, repository and description are required")

	ErrNotFound = errors.New("submission not found")
	ErrNotOwner = errors.New("unauthorized access to this submission")
)

// ParseCreate validates raw create-form input and returns a normalized draft.
// The first violated rule wins; a non-nil error means nothing may be persisted.
func ParseCreate(in CreateInput) (*Draft, error) {
	d := &Draft{
		Kind:           utils.SanitizeText(in.Kind),
		Title:          utils.SanitizeText(in.Name),
		Description:    utils.SanitizeTextarea(in.Description),
		HostedOnGitHub: utils.SanitizeText(in.HostedOnGitHub),
		GitHubUsername: utils.SanitizeText(in.GitHubUsername),
		GitHubRepo:     utils.SanitizeText(in.GitHubRepo),
		DownloadURL:    utils.SanitizeURL(in.DownloadURL),
		Categories:     CleanList(in.Categories),
		Tags:           CleanList(in.Tags),
	}

	if d.Kind == "" || d.Title == "" || d.Description == "" {
		return nil, ErrFieldsRequired
	}
	if d.Kind != models.KindPlugin && d.Kind != models.KindTheme {
		return nil, ErrInvalidKind
	}

	if d.HostedOnGitHub == "yes" {
		if d.GitHubUsername == "" || d.GitHubRepo == "" {
			return nil, ErrGitHubFieldsRequired
		}
		d.DownloadURL = ""
		d.LatestReleaseURL = LatestReleaseURL(d.GitHubUsername, d.GitHubRepo)
	} else {
		d.HostedOnGitHub = "no"
		if in.DownloadURL == "" {
			return nil, ErrDownloadURLRequired
		}
		if d.DownloadURL == "" {
			return nil, ErrInvalidDownloadURL
		}
		d.GitHubUsername = ""
		d.GitHubRepo = ""
		d.LatestReleaseURL = d.DownloadURL
	}

	if in.FeaturedImage == nil || in.FeaturedImage.Filename == "" {
		return nil, ErrFeaturedImageRequired
	}
	return d, nil
}

// ParseEdit validates raw edit-form input. The edit path keeps the original
// workflow's rules: GitHub username and repo are required regardless of how
// the submission is hosted, and the download URL is carried through as-is.
func ParseEdit(in EditInput) (*EditDraft, error) {
	d := &EditDraft{
		SubmissionID:   in.SubmissionID,
		Title:          utils.SanitizeText(in.Name),
		Description:    utils.SanitizeTextarea(in.Description),
		GitHubUsername: utils.SanitizeText(in.GitHubUsername),
		GitHubRepo:     utils.SanitizeText(in.GitHubRepo),
		DownloadURL:    utils.SanitizeURL(in.DownloadURL),
		Categories:     SplitTerms(in.Categories),
	}
	if d.Title == "" || d.GitHubUsername == "" || d.GitHubRepo == "" || d.Description == "" {
		return nil, ErrEditFieldsRequired
	}
	return d, nil
}
