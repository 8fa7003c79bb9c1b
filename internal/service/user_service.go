package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"notes-service/internal/core/auth"
	"notes-service/internal/domain"
	"notes-service/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *UserService {
	return &UserService{users: users, jwter: jwter, log: log}
}

// Register hashes the password and inserts the user with the default role.
// Duplicate usernames surface as domain.ErrDuplicateUsername straight from the
// store's unique index, so concurrent registrations cannot both succeed.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.Uint("id", u.ID), zap.String("username", u.Username))
	return u, nil
}

// Login verifies credentials and issues a bearer token. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	return s.jwter.Issue(u.Username, u.Role)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
