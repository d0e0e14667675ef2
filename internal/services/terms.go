package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/welbinator/therepo/internal/models"
)

// AssignTerms assigns term names within one taxonomy to a submission,
// creating terms that do not exist yet and replacing any prior assignment
// the submission had for that taxonomy.
func AssignTerms(db *gorm.DB, submissionID uint, taxonomy string, names []string) error {
	termIDs := make([]uint, 0, len(names))
	for _, name := range names {
		var term models.Term
		if err := db.Where("taxonomy = ? AND name = ?", taxonomy, name).First(&term).Error; err != nil {
			term = models.Term{Taxonomy: taxonomy, Name: name}
			if err := db.Create(&term).Error; err != nil {
				return fmt.Errorf("create term %q: %w", name, err)
			}
		}
		termIDs = append(termIDs, term.ID)
	}

	taxTerms := db.Model(&models.Term{}).Select("id").Where("taxonomy = ?", taxonomy)
	if err := db.Where("submission_id = ? AND term_id IN (?)", submissionID, taxTerms).
		Delete(&models.SubmissionTerm{}).Error; err != nil {
		return fmt.Errorf("clear %s terms: %w", taxonomy, err)
	}
	for _, id := range termIDs {
		if err := db.Create(&models.SubmissionTerm{SubmissionID: submissionID, TermID: id}).Error; err != nil {
			return fmt.Errorf("assign term: %w", err)
		}
	}
	return nil
}

// TermNames returns the names assigned to a submission within one taxonomy.
func TermNames(db *gorm.DB, submissionID uint, taxonomy string) ([]string, error) {
	var names []string
	err := db.Model(&models.Term{}).
		Joins("JOIN submission_terms ON submission_terms.term_id = terms.id").
		Where("submission_terms.submission_id = ? AND terms.taxonomy = ?", submissionID, taxonomy).
		Order("terms.name").
		Pluck("terms.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
