package therapist

import (
	"github.com/mindhaven/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns the whole directory. Availability is grouped per day in
// first-seen order, slots within a day in insertion order.
func (s *Service) List() ([]therapistResponse, error) {
	var therapists []models.TherapistModel
	if err := s.db.Order("id").Find(&therapists).Error; err != nil {
		return nil, err
	}

	out := make([]therapistResponse, 0, len(therapists))
	for _, t := range therapists {
		var slots []models.TherapistAvailabilityModel
		if err := s.db.Where("therapist_id = ?", t.ID).Order("id").Find(&slots).Error; err != nil {
			return nil, err
		}
		out = append(out, therapistResponse{
			ID:             t.ID,
			Name:           t.Name,
			PhotoURL:       t.PhotoURL,
			Specialization: models.SplitTags(t.Specialization),
			Qualifications: t.Qualifications,
			Contact:        t.Contact,
			Location:       t.Location,
			Availability:   groupByDay(slots),
		})
	}
	return out, nil
}

func groupByDay(slots []models.TherapistAvailabilityModel) []dayAvailability {
	grouped := []dayAvailability{}
	index := map[string]int{}
	for _, a := range slots {
		i, seen := index[a.Day]
		if !seen {
			i = len(grouped)
			index[a.Day] = i
			grouped = append(grouped, dayAvailability{Day: a.Day, Slots: []string{}})
		}
		grouped[i].Slots = append(grouped[i].Slots, a.Slot)
	}
	return grouped
}
