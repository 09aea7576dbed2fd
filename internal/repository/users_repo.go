package repository

import (
	"context"

	"roomwatch/internal/domain"
)

// UsersRepository 用户Repository接口
// Login and the per-request auth gate only ever read; writes exist for the
// seeding tool.
type UsersRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpsertUser(ctx context.Context, user *domain.User) (int, error)
}
