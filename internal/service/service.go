package service

import (
	"time"

	"userapi/internal/models"
	"userapi/internal/repository"
)

// Accounts manages account lifecycle and lookup.
type Accounts interface {
	Register(username, password string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List() ([]models.User, error)
}

// Authorization handles credential checks and token issuance/verification.
type Authorization interface {
	Login(username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Config carries the startup-fixed auth parameters. The signing secret is
// process-wide and never rotated while the service runs.
type Config struct {
	TokenSecret string
	TokenTTL    time.Duration
}

const defaultTokenTTL = time.Hour

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Accounts
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	codec := newTokenCodec(cfg.TokenSecret, cfg.TokenTTL)
	return &Service{
		Accounts:      NewAccountService(repos.Users),
		Authorization: NewAuthService(repos.Users, codec),
	}
}
