package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"critico-backend/internal/model"
	"critico-backend/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("role must be teacher or student")
)

// AuthService interface
type AuthService interface {
	Register(user *model.User) error
	Login(email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService initializes authentication service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(user *model.User) error {
	if user.Role != model.RoleTeacher && user.Role != model.RoleStudent {
		return ErrInvalidRole
	}
	if user.Password == "" {
		return errors.New("password cannot be empty")
	}

	existing, err := s.userRepo.GetUserByEmail(user.Email)
	if err == nil && existing != nil {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := s.userRepo.CreateUser(user); err != nil {
		return errors.New("failed to store user in database")
	}
	return nil
}

func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return user, nil
}
