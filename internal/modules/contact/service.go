package contact

import (
	"github.com/mindhaven/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Add(userID uint, dto *CreateContactDTO) (*models.EmergencyContactModel, error) {
	c := models.EmergencyContactModel{
		UserID:       userID,
		Name:         dto.Name,
		Phone:        dto.Phone,
		Email:        dto.Email,
		Relationship: dto.Relationship,
	}
	return &c, s.db.Create(&c).Error
}

func (s *Service) List(userID uint) ([]models.EmergencyContactModel, error) {
	var contacts []models.EmergencyContactModel
	err := s.db.Where("user_id = ?", userID).Order("id").Find(&contacts).Error
	return contacts, err
}

func (s *Service) Delete(id, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.EmergencyContactModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errContactNotFound
	}
	return nil
}
