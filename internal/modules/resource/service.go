package resource

import (
	"github.com/mindhaven/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns all resources, newest first.
func (s *Service) List() ([]resourceResponse, error) {
	var items []models.ResourceModel
	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	out := make([]resourceResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	return out, nil
}

// Add inserts one manually curated resource. Title and URL are validated by
// the handler.
func (s *Service) Add(dto *CreateResourceDTO) (*models.ResourceModel, error) {
	resourceType := dto.ResourceType
	if resourceType == "" {
		resourceType = "article"
	}
	r := models.ResourceModel{
		Title:        dto.Title,
		Summary:      dto.Summary,
		URL:          dto.URL,
		Source:       dto.Source,
		ResourceType: resourceType,
		Tags:         string(dto.Tags),
		PublishedAt:  parsePublishedAt(dto.PublishedAt),
		Verified:     dto.Verified,
	}
	return &r, s.db.Create(&r).Error
}
