package repository

import (
	"database/sql"
	"errors"

	"userapi/internal/models"
)

// ErrDuplicateUsername reports a username uniqueness violation at insert
// time. The users table's UNIQUE constraint is the authority here; any
// pre-insert existence check in the service layer is only a fast path.
var ErrDuplicateUsername = errors.New("duplicate username")

// Users is the credential store: accounts keyed by username.
type Users interface {
	Create(username, passwordHash string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]models.User, error)
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
	}
}
