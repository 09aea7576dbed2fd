package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
)

type fakeUsersRepo struct {
	users map[string]domain.User
}

func (r *fakeUsersRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUsersRepo) UpsertUser(ctx context.Context, user *domain.User) (int, error) {
	r.users[user.Username] = *user
	return 1, nil
}

func seedUsers(t *testing.T) *fakeUsersRepo {
	t.Helper()
	adminHash, err := HashPassword("letmein")
	require.NoError(t, err)
	viewerHash, err := HashPassword("viewer-pass")
	require.NoError(t, err)
	return &fakeUsersRepo{users: map[string]domain.User{
		"admin": {
			ID: 1, Username: "admin", PasswordHash: adminHash,
			Email: sql.NullString{String: "admin@campus.edu", Valid: true},
			Role:  domain.RoleAdmin,
		},
		"viewer": {ID: 2, Username: "viewer", PasswordHash: viewerHash, Role: domain.RoleUser},
	}}
}

func TestAuthenticate_Success(t *testing.T) {
	svc := NewAuthService(seedUsers(t), zap.NewNop())

	u, err := svc.Authenticate(context.Background(), "admin", "letmein")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.True(t, u.IsAdmin())

	u, err = svc.Authenticate(context.Background(), "viewer", "viewer-pass")
	require.NoError(t, err)
	assert.False(t, u.IsAdmin())
	assert.Equal(t, "user", u.RoleName())
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc := NewAuthService(seedUsers(t), zap.NewNop())

	u, err := svc.Authenticate(context.Background(), "nobody", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, u)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := NewAuthService(seedUsers(t), zap.NewNop())

	u, err := svc.Authenticate(context.Background(), "admin", "guess")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, u)
}

func TestAuthenticate_MissingCredentials(t *testing.T) {
	svc := NewAuthService(seedUsers(t), zap.NewNop())

	_, err := svc.Authenticate(context.Background(), "", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "admin", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordHashing_SaltedAndVerifiable(t *testing.T) {
	h1, err := HashPassword("letmein")
	require.NoError(t, err)
	h2, err := HashPassword("letmein")
	require.NoError(t, err)

	// bcrypt salts per hash; equal passwords never share a hash
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword(h1, "letmein"))
	assert.True(t, CheckPassword(h2, "letmein"))
	assert.False(t, CheckPassword(h1, "LETMEIN"))
}
