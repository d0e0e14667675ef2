package submission

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/welbinator/therepo/internal/models"
	"github.com/welbinator/therepo/internal/services"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Attachment{},
		&models.Submission{},
		&models.SubmissionMeta{},
		&models.Term{},
		&models.SubmissionTerm{},
	))
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, in CreateInput, authorID uint) *models.Submission {
	t.Helper()
	d, err := ParseCreate(in)
	require.NoError(t, err)
	sub, err := Create(db, d, authorID, nil, "")
	require.NoError(t, err)
	return sub
}

func TestCreate_GitHubHostedPlugin(t *testing.T) {
	db := testDB(t)
	sub := mustCreate(t, db, validCreateInput(), 7)

	assert.Equal(t, models.StatusPending, sub.Status)
	assert.Equal(t, uint(7), sub.AuthorID)
	assert.Equal(t, models.KindPlugin, sub.Kind)
	assert.Equal(t, "https://api.github.com/repos/octo/tool/releases/latest",
		services.GetMeta(db, sub.ID, models.MetaLatestReleaseURL))
	assert.Equal(t, "yes", services.GetMeta(db, sub.ID, models.MetaHostedOnGitHub))
	assert.Equal(t, "octo", services.GetMeta(db, sub.ID, models.MetaGitHubUsername))
	assert.Equal(t, "tool", services.GetMeta(db, sub.ID, models.MetaGitHubRepo))
	assert.Empty(t, services.GetMeta(db, sub.ID, models.MetaDownloadURL))
}

func TestCreate_DownloadHostedTheme(t *testing.T) {
	db := testDB(t)
	in := validCreateInput()
	in.Kind = "theme"
	in.HostedOnGitHub = "no"
	in.DownloadURL = "https://example.com/x.zip"
	sub := mustCreate(t, db, in, 3)

	assert.Equal(t, models.KindTheme, sub.Kind)
	assert.Equal(t, "https://example.com/x.zip", services.GetMeta(db, sub.ID, models.MetaLatestReleaseURL))
	assert.Equal(t, "https://example.com/x.zip", services.GetMeta(db, sub.ID, models.MetaDownloadURL))
	assert.Empty(t, services.GetMeta(db, sub.ID, models.MetaGitHubUsername))
}

func TestCreate_ExcerptAndTerms(t *testing.T) {
	db := testDB(t)
	in := validCreateInput()
	in.Description = strings.TrimSpace(strings.Repeat("word ", 80))
	in.Categories = []string{" Forms ", "SEO"}
	in.Tags = []string{"fast"}
	sub := mustCreate(t, db, in, 1)

	assert.Equal(t, ExcerptWords, len(strings.Fields(sub.Excerpt)))

	cats, err := services.TermNames(db, sub.ID, models.TaxonomyPluginCategory)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Forms", "SEO"}, cats)

	tags, err := services.TermNames(db, sub.ID, models.TaxonomyPluginTag)
	require.NoError(t, err)
	assert.Equal(t, []string{"fast"}, tags)
}

func TestCreate_CoverAndFeaturedImage(t *testing.T) {
	db := testDB(t)
	att := models.Attachment{FileName: "shot.png", StorePath: "uploads/x.png", PublicURL: "/uploads/x.png", FileSize: 1}
	require.NoError(t, db.Create(&att).Error)

	d, err := ParseCreate(validCreateInput())
	require.NoError(t, err)
	sub, err := Create(db, d, 1, &att.ID, "/uploads/cover.png")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/cover.png", services.GetMeta(db, sub.ID, models.MetaCoverImageURL))
	var got models.Submission
	require.NoError(t, db.First(&got, sub.ID).Error)
	require.NotNil(t, got.FeaturedImageID)
	assert.Equal(t, att.ID, *got.FeaturedImageID)
}

func validEditDraft(id uint) *EditDraft {
	return &EditDraft{
		SubmissionID:   id,
		Title:          "My Tool",
		Description:    "Does a thing.",
		GitHubUsername: "octo",
		GitHubRepo:     "tool",
		Categories:     []string{"Forms"},
	}
}

func TestEdit_RejectsNonOwner(t *testing.T) {
	db := testDB(t)
	sub := mustCreate(t, db, validCreateInput(), 7)

	_, err := Edit(db, validEditDraft(sub.ID), 8)
	assert.ErrorIs(t, err, ErrNotOwner)

	var got models.Submission
	require.NoError(t, db.First(&got, sub.ID).Error)
	assert.Equal(t, sub.Title, got.Title)
}

func TestEdit_MissingSubmission(t *testing.T) {
	db := testDB(t)
	_, err := Edit(db, validEditDraft(999), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEdit_UpdatesDescriptionOnly(t *testing.T) {
	db := testDB(t)
	sub := mustCreate(t, db, validCreateInput(), 7)
	origRelease := services.GetMeta(db, sub.ID, models.MetaLatestReleaseURL)

	d := validEditDraft(sub.ID)
	d.Description = "A new description."
	got, err := Edit(db, d, 7)
	require.NoError(t, err)

	assert.Equal(t, "My Tool", got.Title)
	assert.Equal(t, "A new description.", got.Description)

	var stored models.Submission
	require.NoError(t, db.First(&stored, sub.ID).Error)
	// edit does not recompute the excerpt, change status or kind
	assert.Equal(t, sub.Excerpt, stored.Excerpt)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Equal(t, models.KindPlugin, stored.Kind)
	// and never touches the stored release URL
	assert.Equal(t, origRelease, services.GetMeta(db, sub.ID, models.MetaLatestReleaseURL))
}

func TestEdit_WritesGitHubMetaUnconditionally(t *testing.T) {
	db := testDB(t)
	in := validCreateInput()
	in.HostedOnGitHub = "no"
	in.DownloadURL = "https://example.com/x.zip"
	sub := mustCreate(t, db, in, 7)

	d := validEditDraft(sub.ID)
	d.DownloadURL = "https://example.com/y.zip"
	_, err := Edit(db, d, 7)
	require.NoError(t, err)

	// download-hosted submission still gets github meta written on edit
	assert.Equal(t, "octo", services.GetMeta(db, sub.ID, models.MetaGitHubUsername))
	assert.Equal(t, "tool", services.GetMeta(db, sub.ID, models.MetaGitHubRepo))
	assert.Equal(t, "https://example.com/y.zip", services.GetMeta(db, sub.ID, models.MetaDownloadURL))
	// latest_release_url still points at the original download URL
	assert.Equal(t, "https://example.com/x.zip", services.GetMeta(db, sub.ID, models.MetaLatestReleaseURL))
}

func TestEdit_ReplacesCategories(t *testing.T) {
	db := testDB(t)
	in := validCreateInput()
	in.Categories = []string{"Forms", "SEO"}
	sub := mustCreate(t, db, in, 7)

	d := validEditDraft(sub.ID)
	d.Categories = []string{"Commerce"}
	_, err := Edit(db, d, 7)
	require.NoError(t, err)

	cats, err := services.TermNames(db, sub.ID, models.TaxonomyPluginCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"Commerce"}, cats)
}

func TestEdit_ReplacesFeaturedImage(t *testing.T) {
	db := testDB(t)
	sub := mustCreate(t, db, validCreateInput(), 7)

	att := models.Attachment{FileName: "new.png", StorePath: "uploads/new.png", PublicURL: "/uploads/new.png", FileSize: 1}
	require.NoError(t, db.Create(&att).Error)

	edited, err := Edit(db, validEditDraft(sub.ID), 7)
	require.NoError(t, err)
	require.NoError(t, SetFeaturedImage(db, edited, att.ID))

	var got models.Submission
	require.NoError(t, db.First(&got, sub.ID).Error)
	require.NotNil(t, got.FeaturedImageID)
	assert.Equal(t, att.ID, *got.FeaturedImageID)
}

func TestListByAuthor(t *testing.T) {
	db := testDB(t)
	mustCreate(t, db, validCreateInput(), 7)
	mustCreate(t, db, validCreateInput(), 7)
	mustCreate(t, db, validCreateInput(), 8)

	subs, err := ListByAuthor(db, 7)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
	// newest first
	assert.Greater(t, subs[0].ID, subs[1].ID)
}
