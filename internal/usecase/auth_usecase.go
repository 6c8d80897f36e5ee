package usecase

import (
	"context"
	"time"

	"skill-gap/internal/pkg/jwt"
	ucauth "skill-gap/internal/usecase/auth"
)

type AdminToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

type AuthUsecase interface {
	Enabled() bool
	IssueAdminToken(ctx context.Context, password string) (AdminToken, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(passwordHash string, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(passwordHash), jwt: jwtSvc}
}

func (u *Auth) Enabled() bool {
	return u != nil && u.authSvc.Enabled() && u.jwt != nil
}

func (u *Auth) IssueAdminToken(_ context.Context, password string) (AdminToken, error) {
	if !u.Enabled() {
		return AdminToken{}, ErrUnauthorized
	}
	if err := u.authSvc.Verify(password); err != nil {
		return AdminToken{}, ErrUnauthorized
	}

	tok, exp, err := u.jwt.GenerateAdminToken()
	if err != nil {
		return AdminToken{}, ErrInternal
	}
	return AdminToken{AccessToken: tok, ExpiresAt: exp}, nil
}
