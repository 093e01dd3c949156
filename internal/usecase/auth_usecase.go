package usecase

import (
	"context"
	"strings"

	"github.com/robinlwong/tech-talent-radar/internal/config"
	"github.com/robinlwong/tech-talent-radar/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

// AuthUsecase issues admin access tokens. Credentials come from config, not
// a user store: the only privileged operation is reloading the corpus.
type AuthUsecase struct {
	cfg config.AuthConfig
	jwt jwt.Service
}

func NewAuthUsecase(cfg config.AuthConfig, jwtSvc jwt.Service) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, jwt: jwtSvc}
}

func (u *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	username = strings.TrimSpace(username)
	if u.cfg.AdminUser == "" || u.cfg.AdminPasswordHash == "" {
		return "", ErrUnauthorized
	}
	if username != u.cfg.AdminUser {
		return "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	token, err := u.jwt.GenerateAccessToken(username)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}
