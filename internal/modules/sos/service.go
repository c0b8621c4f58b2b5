package sos

import (
	"fmt"
	"time"

	"github.com/mindhaven/core/internal/models"
	"gorm.io/gorm"
)

// Service is a notification stub. It reports which emergency contacts would
// be alerted without dispatching anything; real SMS/email/push channels are
// out of scope.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Send builds the synthetic acknowledgement for the user. Having no
// contacts is tolerated and yields an empty notified list.
func (s *Service) Send(email string, userID uint) (*alertResponse, error) {
	var contacts []models.EmergencyContactModel
	if userID != 0 {
		if err := s.db.Where("user_id = ?", userID).Order("id").Find(&contacts).Error; err != nil {
			return nil, err
		}
	}

	notified := make([]notifiedContact, len(contacts))
	for i, c := range contacts {
		notified[i] = notifiedContact{Name: c.Name, Phone: c.Phone, Email: c.Email}
	}
	return &alertResponse{
		Status:           "success",
		Message:          fmt.Sprintf("SOS alert sent for %s!", email),
		Timestamp:        time.Now().UTC(),
		NotifiedContacts: notified,
	}, nil
}
