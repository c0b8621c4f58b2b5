package auth

import (
	"errors"

	"github.com/mindhaven/core/internal/models"
	"github.com/mindhaven/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Register stores a new account with a bcrypt password hash. Email is the
// uniqueness key; the plaintext password is never persisted.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{Username: dto.Username, Email: dto.Email, Password: string(hash)}
	return &u, s.db.Create(&u).Error
}

// Login checks credentials and issues an access token bound to the email.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(email, password string) (string, error) {
	var u models.UserModel
	if err := s.db.Select("id, email, password").Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errBadCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", errBadCredentials
	}
	return jwt.Sign(u.Email, jwt.TokenTTL)
}

// UserByEmail resolves an identity claim to its user row. Returns (nil, nil)
// when no such account exists.
func (s *Service) UserByEmail(email string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
