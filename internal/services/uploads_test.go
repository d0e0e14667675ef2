package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welbinator/therepo/internal/config"
	"github.com/welbinator/therepo/internal/models"
)

func uploadHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func TestSaveFeaturedImage(t *testing.T) {
	config.Current.UploadDir = t.TempDir()
	config.Current.PublicBaseURL = ""
	db := testDB(t)
	require.NoError(t, db.AutoMigrate(&models.Attachment{}))

	fh := uploadHeader(t, "featured_image", "shot.png", []byte("not really a png"))
	att, err := SaveFeaturedImage(db, fh)
	require.NoError(t, err)

	assert.Equal(t, "shot.png", att.FileName)
	assert.EqualValues(t, len("not really a png"), att.FileSize)
	assert.NotEmpty(t, att.Sha256)
	assert.Contains(t, att.PublicURL, "/uploads/")

	// file landed on disk and the row is queryable
	_, err = os.Stat(att.StorePath)
	assert.NoError(t, err)
	var got models.Attachment
	assert.NoError(t, db.First(&got, att.ID).Error)
}

func TestSaveCoverImage(t *testing.T) {
	config.Current.UploadDir = t.TempDir()
	config.Current.PublicBaseURL = "https://cdn.example.com"

	fh := uploadHeader(t, "cover_image", "cover.jpg", []byte("jpg bytes"))
	url, err := SaveCoverImage(fh)
	require.NoError(t, err)
	assert.Contains(t, url, "https://cdn.example.com/uploads/")
}
