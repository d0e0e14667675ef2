package models

import "time"

const (
	TaxonomyPluginCategory = "plugin-category"
	TaxonomyThemeCategory  = "theme-category"
	TaxonomyPluginTag      = "plugin-tag"
	TaxonomyThemeTag       = "theme-tag"
)

// Term is a free-text classification term within a kind-scoped taxonomy.
// Terms are created on first assignment.
type Term struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Taxonomy string `gorm:"size:64;uniqueIndex:uniq_taxonomy_term;not null"`
	Name     string `gorm:"size:200;uniqueIndex:uniq_taxonomy_term;not null"`
}

// SubmissionTerm links a submission to a term. Assignment for a taxonomy
// replaces any prior rows for that submission+taxonomy.
type SubmissionTerm struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	SubmissionID uint `gorm:"index;uniqueIndex:uniq_submission_term;not null"`
	TermID       uint `gorm:"index;uniqueIndex:uniq_submission_term;not null"`
}
