package service

import (
	"wordbot/internal/domain"
	"wordbot/internal/repository"
)

// UserService handles implicit user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureUserExists creates user record if doesn't exist
func (s *UserService) EnsureUserExists(user domain.User) error {
	return s.userRepo.EnsureUserExists(user)
}
