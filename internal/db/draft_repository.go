package db

import (
	"time"

	"github.com/crusadia/journal/internal/models"
	"gorm.io/gorm"
)

type DraftRepository struct {
	database *gorm.DB
}

func NewDraftRepository(database *gorm.DB) *DraftRepository {
	return &DraftRepository{database: database}
}

func (repo *DraftRepository) ListByUserWeek(userID string, weekStart time.Time, section *models.SectionKind, daySlot *int) ([]models.Draft, error) {
	query := repo.database.Model(&models.Draft{}).Where("user_id = ? AND week_start = ?", userID, weekStart)
	if section != nil {
		query = query.Where("section = ?", *section)
	}
	if daySlot != nil {
		query = query.Where("day_slot = ?", *daySlot)
	}

	drafts := make([]models.Draft, 0)
	if err := query.Order("section ASC, day_slot ASC, id ASC").Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

func (repo *DraftRepository) FindByKey(userID string, weekStart time.Time, section models.SectionKind, daySlot int) (models.Draft, bool, error) {
	draft := models.Draft{}
	result := repo.database.
		Where("user_id = ? AND week_start = ? AND section = ? AND day_slot = ?", userID, weekStart, section, daySlot).
		Limit(1).
		Find(&draft)
	if result.Error != nil {
		return models.Draft{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Draft{}, false, nil
	}
	return draft, true, nil
}

func (repo *DraftRepository) Create(draft *models.Draft) error {
	return repo.database.Create(draft).Error
}

func (repo *DraftRepository) Save(draft *models.Draft) error {
	return repo.database.Save(draft).Error
}

func (repo *DraftRepository) DeleteByKey(userID string, weekStart time.Time, section models.SectionKind, daySlot int) error {
	return repo.database.
		Where("user_id = ? AND week_start = ? AND section = ? AND day_slot = ?", userID, weekStart, section, daySlot).
		Delete(&models.Draft{}).Error
}
