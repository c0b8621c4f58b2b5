package models

// MoodEntryModel is one journal entry. The timestamp is the row creation
// time, assigned by the server, never the client.
type MoodEntryModel struct {
	Base
	UserID uint   `json:"-"    gorm:"index;not null"`
	Mood   string `json:"mood" gorm:"size:50;not null"`
	Note   string `json:"note" gorm:"type:text"`
}

func (MoodEntryModel) TableName() string { return "mood_entries" }
