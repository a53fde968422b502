package service

import (
	"context"
	"errors"
	"time"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/utils"
)

// ErrInvalidCredentials is the uniform login rejection. Unknown email and
// wrong password both map here so nothing about the account leaks.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users  store.UserStore
	secret string
	ttl    time.Duration
}

func NewAuthService(users store.UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

// Login verifies the password against the stored bcrypt hash and issues a
// session token carrying the user's id.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(user.ID, s.secret, s.ttl)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
