package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"userapi/internal/models"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
	selectAllUsersSQL       = `SELECT id, username, password_hash FROM users`
)

// Create inserts a new user under a freshly assigned id and returns it.
// A username collision surfaces as ErrDuplicateUsername.
func (r *UserRepository) Create(username, passwordHash string) (*models.User, error) {
	id := uuid.NewString()
	if _, err := r.db.Exec(insertUserSQL, id, username, passwordHash); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert user %q: %w", username, ErrDuplicateUsername)
		}
		return nil, fmt.Errorf("insert user %q: %w", username, err)
	}
	return &models.User{ID: id, Username: username, PasswordHash: passwordHash}, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByUsernameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// GetAll returns every stored user in table scan order.
func (r *UserRepository) GetAll() ([]models.User, error) {
	rows, err := r.db.Query(selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

// isUniqueViolation detects a sqlite UNIQUE constraint failure. modernc.org/sqlite
// exposes the SQLITE_CONSTRAINT_UNIQUE condition only through the error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
