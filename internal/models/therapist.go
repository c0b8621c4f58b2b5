package models

// TherapistModel is a directory entry. There is no write surface over HTTP;
// rows are seeded out-of-band (cmd/seed).
type TherapistModel struct {
	Base
	Name           string `json:"name"           gorm:"size:150;not null"`
	PhotoURL       string `json:"photo_url"      gorm:"size:300"`
	Specialization string `json:"specialization" gorm:"size:300"` // comma-joined
	Qualifications string `json:"qualifications" gorm:"size:300"`
	Contact        string `json:"contact"        gorm:"size:150"`
	Location       string `json:"location"       gorm:"size:150"`
}

func (TherapistModel) TableName() string { return "therapists" }

// TherapistAvailabilityModel is a recurring weekly opening, not a dated
// calendar event. Day is a weekday label ("Monday"), Slot a time label
// ("09:00").
type TherapistAvailabilityModel struct {
	Base
	TherapistID uint   `json:"therapist_id" gorm:"index;not null"`
	Day         string `json:"day"          gorm:"size:20;not null"`
	Slot        string `json:"slot"         gorm:"size:10;not null"`
}

func (TherapistAvailabilityModel) TableName() string { return "therapist_availabilities" }
