package service

import (
	"critico-backend/internal/model"
	"critico-backend/internal/repository"
)

type UserService interface {
	GetAllUsers() ([]model.User, error)
	GetUser(userID uint) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	return s.userRepo.GetAllUsers()
}

func (s *userService) GetUser(userID uint) (*model.User, error) {
	return s.userRepo.GetUserByID(userID)
}
