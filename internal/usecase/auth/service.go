package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDisabled           = errors.New("admin auth disabled")
)

// Service checks the admin password against a bcrypt hash.
type Service struct {
	hash []byte
}

func NewService(passwordHash string) *Service {
	return &Service{hash: []byte(passwordHash)}
}

func (s *Service) Enabled() bool {
	return s != nil && len(s.hash) > 0
}

func (s *Service) Verify(password string) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	if password == "" {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword is used by the CLI to produce ADMIN_PASSWORD_HASH values.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
