package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/welbinator/therepo/internal/config"
	"github.com/welbinator/therepo/internal/models"
)

type storedFile struct {
	FileName  string
	StorePath string
	PublicURL string
	MimeType  string
	FileSize  int64
	Sha256    string
}

// SaveFeaturedImage stores an uploaded image and registers it as a media
// attachment. The returned attachment's ID is what a submission references as
// its featured image.
func SaveFeaturedImage(db *gorm.DB, fh *multipart.FileHeader) (*models.Attachment, error) {
	sf, err := storeUpload(fh)
	if err != nil {
		return nil, err
	}
	att := models.Attachment{
		FileName:  sf.FileName,
		StorePath: sf.StorePath,
		PublicURL: sf.PublicURL,
		MimeType:  sf.MimeType,
		FileSize:  sf.FileSize,
		Sha256:    sf.Sha256,
	}
	if err := db.Create(&att).Error; err != nil {
		return nil, fmt.Errorf("register attachment: %w", err)
	}
	return &att, nil
}

// SaveCoverImage stores an uploaded image and returns only its public URL.
// Cover images are not registered in the attachment library.
func SaveCoverImage(fh *multipart.FileHeader) (string, error) {
	sf, err := storeUpload(fh)
	if err != nil {
		return "", err
	}
	return sf.PublicURL, nil
}

func storeUpload(fh *multipart.FileHeader) (*storedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	baseDir := config.Current.UploadDir
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	storedName := uuid.NewString() + ext
	dstPath := filepath.Join(baseDir, storedName)
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	hasher := sha256.New()
	n, err := io.Copy(io.MultiWriter(dst, hasher), src)
	dst.Close()
	if err != nil {
		os.Remove(dstPath)
		return nil, fmt.Errorf("write upload: %w", err)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(ext)
	}

	return &storedFile{
		FileName:  filepath.Base(fh.Filename),
		StorePath: dstPath,
		PublicURL: config.Current.PublicBaseURL + "/uploads/" + storedName,
		MimeType:  mimeType,
		FileSize:  n,
		Sha256:    hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}
