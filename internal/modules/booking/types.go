package booking

import (
	"errors"
	"time"
)

type CreateBookingDTO struct {
	TherapistID uint   `json:"therapistId"`
	Day         string `json:"day"`
	Slot        string `json:"slot"`
}

type UpdateBookingDTO struct {
	Day  string `json:"day"`
	Slot string `json:"slot"`
}

type bookingSummary struct {
	ID        uint   `json:"id"`
	Therapist string `json:"therapist"`
	Day       string `json:"day"`
	Slot      string `json:"slot"`
}

type bookingResponse struct {
	ID          uint      `json:"id"`
	Therapist   string    `json:"therapist"`
	Day         string    `json:"day"`
	Slot        string    `json:"slot"`
	CreatedAt   time.Time `json:"created_at"`
	TherapistID uint      `json:"therapist_id"`
}

var (
	errTherapistNotFound = errors.New("therapist not found")
	errBookingNotFound   = errors.New("booking not found")
	errSlotUnavailable   = errors.New("selected slot not available")
	errSlotTaken         = errors.New("selected slot already booked")
)
