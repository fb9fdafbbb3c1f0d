package service

import (
	"errors"
	"fmt"

	"userapi/internal/repository"
)

// Domain errors for account and auth flows.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Keeping a single value (and message) for both prevents
	// username enumeration through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrPasswordEmpty      = errors.New("password is empty")
)

// dummyHash is a syntactically valid bcrypt hash compared against when the
// username does not exist, so the miss path costs the same bcrypt work as a
// wrong-password check and the two failures match in timing, not just text.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	users  repository.Users
	tokens *tokenCodec
}

func NewAuthService(users repository.Users, tokens *tokenCodec) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login validates credentials and returns a signed token on success.
func (s *AuthService) Login(username, password string) (string, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("look up user %q: %w", username, err)
	}
	if u == nil {
		verifyPassword(dummyHash, password)
		return "", ErrInvalidCredentials
	}

	if !verifyPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(u.Username)
}

// ParseToken verifies a bearer token and returns the username it was issued to.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	return s.tokens.Verify(accessToken)
}
