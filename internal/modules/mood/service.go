package mood

import (
	"errors"
	"strings"

	"github.com/mindhaven/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Add inserts one entry with a server-assigned timestamp.
func (s *Service) Add(userID uint, mood, note string) (*models.MoodEntryModel, error) {
	entry := models.MoodEntryModel{UserID: userID, Mood: strings.TrimSpace(mood), Note: note}
	return &entry, s.db.Create(&entry).Error
}

// List returns the user's entries, newest first.
func (s *Service) List(userID uint) ([]models.MoodEntryModel, error) {
	var entries []models.MoodEntryModel
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&entries).Error
	return entries, err
}

// Update changes only the supplied fields of an entry owned by userID.
// Absence and foreign ownership are both errMoodNotFound.
func (s *Service) Update(id, userID uint, dto *UpdateMoodDTO) error {
	entry, err := s.owned(id, userID)
	if err != nil {
		return err
	}
	updates := map[string]interface{}{}
	if strings.TrimSpace(dto.Mood) != "" {
		updates["mood"] = dto.Mood
	}
	if dto.Note != nil {
		updates["note"] = *dto.Note
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(entry).Updates(updates).Error
}

// Delete removes an entry owned by userID.
func (s *Service) Delete(id, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.MoodEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errMoodNotFound
	}
	return nil
}

func (s *Service) owned(id, userID uint) (*models.MoodEntryModel, error) {
	var entry models.MoodEntryModel
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errMoodNotFound
		}
		return nil, err
	}
	return &entry, nil
}
