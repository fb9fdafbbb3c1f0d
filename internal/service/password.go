package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// helper: hash password safely. bcrypt embeds algorithm id, cost and a fresh
// random salt into the output, so two hashes of the same password differ.
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrPasswordEmpty
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash. The comparison inside bcrypt is
// constant-time; a malformed hash simply reports a mismatch.
func verifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
