package mood

import (
	"errors"
	"time"
)

type CreateMoodDTO struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

// UpdateMoodDTO carries a partial update. An empty mood means "not
// supplied"; Note is a pointer so an explicit empty note clears the field.
type UpdateMoodDTO struct {
	Mood string  `json:"mood"`
	Note *string `json:"note"`
}

type moodResponse struct {
	ID        uint      `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
}

var errMoodNotFound = errors.New("mood entry not found")
