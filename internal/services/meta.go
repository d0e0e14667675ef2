package services

import (
	"gorm.io/gorm"

	"github.com/welbinator/therepo/internal/models"
)

// SetMeta upserts one key-value entry for a submission.
func SetMeta(db *gorm.DB, submissionID uint, key, value string) error {
	var m models.SubmissionMeta
	if err := db.Where("submission_id = ? AND key = ?", submissionID, key).First(&m).Error; err != nil {
		m = models.SubmissionMeta{SubmissionID: submissionID, Key: key, Value: value}
		return db.Create(&m).Error
	}
	m.Value = value
	return db.Save(&m).Error
}

// GetMeta returns the value for a key, or "" when unset.
func GetMeta(db *gorm.DB, submissionID uint, key string) string {
	var m models.SubmissionMeta
	if err := db.Where("submission_id = ? AND key = ?", submissionID, key).First(&m).Error; err != nil {
		return ""
	}
	return m.Value
}

// MetaMap loads all meta entries of a submission keyed by name.
func MetaMap(db *gorm.DB, submissionID uint) (map[string]string, error) {
	var rows []models.SubmissionMeta
	if err := db.Where("submission_id = ?", submissionID).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}
