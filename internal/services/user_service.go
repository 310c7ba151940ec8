package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-bookstore/internal/db"
	"github.com/Keoroanthony/go-bookstore/internal/models"
)

type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	Address  string
	Age      *int
}

// RegisterUser creates a customer account with a bcrypt-hashed password.
func RegisterUser(input RegisterUserInput) (*models.User, error) {

	var count int64
	if err := db.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	if err := db.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(input.Username, input.Email, string(hash), input.Address, input.Age)

	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func FindUserByUsername(username string) (*models.User, error) {

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// AuthenticateUser verifies a username/password pair. A missing user and
// a wrong password are indistinguishable to the caller.
func AuthenticateUser(username, password string) (*models.User, error) {

	user, err := FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
