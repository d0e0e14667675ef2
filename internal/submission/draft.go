package submission

import (
	"mime/multipart"
	"net/url"
)

// CreateInput carries the raw create-form fields. Handlers fill it from the
// request; nothing below this point reads ambient request state.
type CreateInput struct {
	Kind           string
	Name           string
	Description    string
	HostedOnGitHub string
	GitHubUsername string
	GitHubRepo     string
	DownloadURL    string
	Categories     []string
	Tags           []string
	FeaturedImage  *multipart.FileHeader
	CoverImage     *multipart.FileHeader
}

// Draft is a validated, normalized submission ready for the writer.
type Draft struct {
	Kind             string
	Title            string
	Description      string
	HostedOnGitHub   string
	GitHubUsername   string
	GitHubRepo       string
	DownloadURL      string
	LatestReleaseURL string
	Categories       []string
	Tags             []string
}

// EditInput carries the raw edit-form fields. Categories arrive as a single
// comma-separated string on this path.
type EditInput struct {
	SubmissionID   uint
	Name           string
	Description    string
	GitHubUsername string
	GitHubRepo     string
	DownloadURL    string
	Categories     string
	FeaturedImage  *multipart.FileHeader
}

// EditDraft is the validated edit payload. Note what is absent: kind, status
// and excerpt are never touched by an edit, and there is no recomputed
// latest-release URL.
type EditDraft struct {
	SubmissionID   uint
	Title          string
	Description    string
	GitHubUsername string
	GitHubRepo     string
	DownloadURL    string
	Categories     []string
}

// LatestReleaseURL builds the GitHub releases API URL for a repo, escaping
// each path component.
func LatestReleaseURL(username, repo string) string {
	return "https://api.github.com/repos/" + url.PathEscape(username) + "/" + url.PathEscape(repo) + "/releases/latest"
}
