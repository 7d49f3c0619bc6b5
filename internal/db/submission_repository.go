package db

import (
	"time"

	"github.com/crusadia/journal/internal/models"
	"gorm.io/gorm"
)

type SubmissionRepository struct {
	database *gorm.DB
}

func NewSubmissionRepository(database *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{database: database}
}

// Append inserts a new submission record. Records are never updated or
// deleted; resubmitting the same key creates an additional row.
func (repo *SubmissionRepository) Append(submission *models.Submission) error {
	return repo.database.Create(submission).Error
}

func (repo *SubmissionRepository) ListByUserWeek(userID string, weekStart time.Time, section *models.SectionKind, daySlot *int) ([]models.Submission, error) {
	query := repo.database.Model(&models.Submission{}).Where("user_id = ? AND week_start = ?", userID, weekStart)
	if section != nil {
		query = query.Where("section = ?", *section)
	}
	if daySlot != nil {
		query = query.Where("day_slot = ?", *daySlot)
	}

	submissions := make([]models.Submission, 0)
	if err := query.Order("submitted_at ASC, id ASC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
