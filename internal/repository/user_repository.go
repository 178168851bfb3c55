package repository

import (
	"errors"

	"critico-backend/internal/db"
	"critico-backend/internal/model"
)

type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByID(userID uint) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetAllUsers() ([]model.User, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) CreateUser(user *model.User) error {
	return db.GetDB().Create(user).Error
}

func (r *userRepository) GetUserByID(userID uint) (*model.User, error) {
	var user model.User
	err := db.GetDB().Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := db.GetDB().Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers() ([]model.User, error) {
	var users []model.User
	err := db.GetDB().Find(&users).Error
	return users, err
}
