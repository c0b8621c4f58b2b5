package models

// EmergencyContactModel is an owner-scoped contact used by the SOS stub.
type EmergencyContactModel struct {
	Base
	UserID       uint   `json:"-"            gorm:"index;not null"`
	Name         string `json:"name"         gorm:"size:100;not null"`
	Phone        string `json:"phone"        gorm:"size:20;not null"`
	Email        string `json:"email"        gorm:"size:120"`
	Relationship string `json:"relationship" gorm:"size:50"`
}

func (EmergencyContactModel) TableName() string { return "emergency_contacts" }
