package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
)

// AuthService 认证授权服务接口
// Authorization is re-evaluated from caller-supplied credentials on every
// request; there are no sessions or tokens to invalidate.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

type authService struct {
	users  repository.UsersRepository
	logger *zap.Logger
}

func NewAuthService(users repository.UsersRepository, logger *zap.Logger) AuthService {
	return &authService{users: users, logger: logger}
}

// Authenticate resolves the credential pair to a user row, failing closed
// with ErrInvalidCredentials on unknown usernames and wrong passwords alike.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Warn("Authentication failed: unknown username",
			zap.String("username", username),
		)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		s.logger.Warn("Authentication failed: password mismatch",
			zap.String("username", username),
		)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
