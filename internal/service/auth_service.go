package service

import (
	"context"
	"time"

	"github.com/avolkov/photovault/internal/model"
	appErr "github.com/avolkov/photovault/internal/pkg/errors"
	"github.com/avolkov/photovault/internal/pkg/jwt"
	"github.com/avolkov/photovault/internal/pkg/password"
	"github.com/avolkov/photovault/internal/repo"
)

type AuthService struct {
	users     *repo.UserRepo
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users *repo.UserRepo, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates a user; a duplicate email surfaces as ErrConflict. The
// returned user carries the hash internally but it is never serialized.
func (s *AuthService) Register(ctx context.Context, email, plainPassword string) (*model.User, error) {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:          email,
		HashedPassword: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both return the same ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", appErr.ErrUnauthorized
	}
	if err := password.Compare(user.HashedPassword, plainPassword); err != nil {
		return "", appErr.ErrUnauthorized
	}
	token, err := jwt.GenerateToken(user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a bearer token to its user. Bad signature, expiry, missing
// subject and a deleted user all collapse into ErrUnauthorized.
func (s *AuthService) Resolve(ctx context.Context, token string) (*model.User, error) {
	subject, err := jwt.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, appErr.ErrUnauthorized
	}
	user, err := s.users.GetByEmail(ctx, subject)
	if err != nil {
		return nil, appErr.ErrUnauthorized
	}
	return user, nil
}
