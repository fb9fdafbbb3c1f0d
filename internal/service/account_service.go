package service

import (
	"errors"
	"fmt"

	"userapi/internal/models"
	"userapi/internal/repository"
)

// AccountService handles registration and account lookup.
type AccountService struct {
	users repository.Users
}

func NewAccountService(users repository.Users) *AccountService {
	return &AccountService{users: users}
}

// Register hashes the password and stores a new account. The existence check
// and the insert are not atomic; a concurrent registration of the same name
// loses at the store's unique constraint and is reported the same way.
func (s *AccountService) Register(username, password string) (*models.User, error) {
	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("look up user %q: %w", username, err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	u, err := s.users.Create(username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	return u, nil
}

// GetByUsername returns the stored account or ErrUserNotFound.
func (s *AccountService) GetByUsername(username string) (*models.User, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("look up user %q: %w", username, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List returns all accounts in store iteration order.
func (s *AccountService) List() ([]models.User, error) {
	return s.users.GetAll()
}
