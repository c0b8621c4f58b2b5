package models

import "time"

// Base is the base model for all entities. Surrogate keys are plain
// autoincrement integers, which is what the API exposes.
type Base struct {
	ID        uint      `json:"id"      gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
