package booking

import (
	"errors"

	"github.com/mindhaven/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create claims a (therapist, day, slot) opening for the user. The slot must
// appear in the therapist's declared availability and must not already be
// claimed by any booking system-wide. The composite unique index on
// bookings makes the claim first-committer-wins even under concurrent
// requests; the explicit existence check supplies the 409.
func (s *Service) Create(userID, therapistID uint, day, slot string) (*models.BookingModel, string, error) {
	var therapist models.TherapistModel
	if err := s.db.First(&therapist, therapistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errTherapistNotFound
		}
		return nil, "", err
	}

	if err := s.checkSlot(therapistID, day, slot, 0); err != nil {
		return nil, "", err
	}

	b := models.BookingModel{UserID: userID, TherapistID: therapistID, Day: day, Slot: slot}
	if err := s.db.Create(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", errSlotTaken
		}
		return nil, "", err
	}
	return &b, therapist.Name, nil
}

// ListFor returns the user's bookings annotated with the therapist name.
// A booking outlives its therapist row; the name then reads "Unknown".
func (s *Service) ListFor(userID uint) ([]bookingResponse, error) {
	var bookings []models.BookingModel
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		name := "Unknown"
		var therapist models.TherapistModel
		if err := s.db.First(&therapist, b.TherapistID).Error; err == nil {
			name = therapist.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		out = append(out, bookingResponse{
			ID:          b.ID,
			Therapist:   name,
			Day:         b.Day,
			Slot:        b.Slot,
			CreatedAt:   b.CreatedAt,
			TherapistID: b.TherapistID,
		})
	}
	return out, nil
}

// Update moves a booking to another (day, slot) of the same therapist,
// re-validated against availability and occupancy.
func (s *Service) Update(id, userID uint, day, slot string) error {
	booking, err := s.owned(id, userID)
	if err != nil {
		return err
	}

	if err := s.checkSlot(booking.TherapistID, day, slot, booking.ID); err != nil {
		return err
	}

	err = s.db.Model(booking).Updates(map[string]interface{}{"day": day, "slot": slot}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errSlotTaken
	}
	return err
}

// Delete frees the slot.
func (s *Service) Delete(id, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.BookingModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errBookingNotFound
	}
	return nil
}

// checkSlot verifies (therapist, day, slot) is declared availability and is
// not claimed by a booking other than excludeID.
func (s *Service) checkSlot(therapistID uint, day, slot string, excludeID uint) error {
	var availCount int64
	err := s.db.Model(&models.TherapistAvailabilityModel{}).
		Where("therapist_id = ? AND day = ? AND slot = ?", therapistID, day, slot).
		Count(&availCount).Error
	if err != nil {
		return err
	}
	if availCount == 0 {
		return errSlotUnavailable
	}

	var existing models.BookingModel
	err = s.db.Where("therapist_id = ? AND day = ? AND slot = ?", therapistID, day, slot).
		First(&existing).Error
	if err == nil {
		if existing.ID != excludeID {
			return errSlotTaken
		}
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *Service) owned(id, userID uint) (*models.BookingModel, error) {
	var b models.BookingModel
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}
