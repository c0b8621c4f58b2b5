package models

// BookingModel claims one recurring (therapist, day, slot) opening for one
// user. The composite unique index makes slot occupancy atomic at the
// storage layer; the service-level existence check only provides the
// friendlier 409 message.
type BookingModel struct {
	Base
	UserID      uint   `json:"-"    gorm:"index;not null"`
	TherapistID uint   `json:"therapist_id" gorm:"not null;uniqueIndex:idx_booking_slot"`
	Day         string `json:"day"  gorm:"size:20;not null;uniqueIndex:idx_booking_slot"`
	Slot        string `json:"slot" gorm:"size:10;not null;uniqueIndex:idx_booking_slot"`
}

func (BookingModel) TableName() string { return "bookings" }
