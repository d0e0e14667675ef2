package models

import "time"

const (
	KindPlugin = "plugin"
	KindTheme  = "theme"

	StatusPending   = "pending"
	StatusPublished = "publish"
)

// Meta keys stored per submission.
const (
	MetaHostedOnGitHub   = "hosted_on_github"
	MetaGitHubUsername   = "github_username"
	MetaGitHubRepo       = "github_repo"
	MetaDownloadURL      = "download_url"
	MetaLatestReleaseURL = "latest_release_url"
	MetaCoverImageURL    = "cover_image_url"
	MetaLatestVersion    = "latest_version"
)

// Submission is a plugin or theme listing. Kind is fixed at creation; status
// starts at pending and is changed by moderators, never by the submitter.
type Submission struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Kind        string `gorm:"size:16;index;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Excerpt     string `gorm:"type:text"`
	Status      string `gorm:"size:16;index;not null;default:pending"`
	AuthorID    uint   `gorm:"index;not null"`

	FeaturedImageID *uint
	FeaturedImage   *Attachment `gorm:"foreignKey:FeaturedImageID"`

	Meta []SubmissionMeta `gorm:"foreignKey:SubmissionID"`
}

// SubmissionMeta is a key-value entry; keys are unique per submission.
type SubmissionMeta struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	SubmissionID uint   `gorm:"index;uniqueIndex:uniq_submission_meta;not null"`
	Key          string `gorm:"size:64;uniqueIndex:uniq_submission_meta;not null"`
	Value        string `gorm:"type:text"`
}

// Attachment is an uploaded media file registered in the library.
type Attachment struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	FileName  string `gorm:"size:255;not null"`
	StorePath string `gorm:"size:512;not null"`
	PublicURL string `gorm:"size:512;not null"`
	MimeType  string `gorm:"size:128"`
	FileSize  int64  `gorm:"not null"`
	Sha256    string `gorm:"size:64"`
}

// CategoryTaxonomy returns the category taxonomy scoped to the submission kind.
func (s *Submission) CategoryTaxonomy() string {
	if s.Kind == KindPlugin {
		return TaxonomyPluginCategory
	}
	return TaxonomyThemeCategory
}

// TagTaxonomy returns the tag taxonomy scoped to the submission kind.
func (s *Submission) TagTaxonomy() string {
	if s.Kind == KindPlugin {
		return TaxonomyPluginTag
	}
	return TaxonomyThemeTag
}
