package models

// UserModel represents a registered account. Email doubles as the identity
// claim carried in access tokens, so it must stay unique.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"size:80;not null"`
	Email    string `json:"email"    gorm:"size:120;uniqueIndex;not null"`
	Password string `json:"-"        gorm:"size:128;not null"` // bcrypt hash
}

func (UserModel) TableName() string { return "users" }
