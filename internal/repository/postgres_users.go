package repository

import (
	"context"
	"database/sql"

	"roomwatch/internal/domain"
)

type PostgresUsersRepo struct {
	db *sql.DB
}

func NewPostgresUsersRepo(db *sql.DB) *PostgresUsersRepo {
	return &PostgresUsersRepo{db: db}
}

func (r *PostgresUsersRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := `
		SELECT id, username, password_hash, email, phone, role
		FROM users
		WHERE username = $1`

	var u domain.User
	err := r.db.QueryRowContext(ctx, q, username).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&u.Phone,
		&u.Role,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertUser inserts the user or, when the username is taken, refreshes its
// hash, contact fields and role. Used by cmd/seed-admin.
func (r *PostgresUsersRepo) UpsertUser(ctx context.Context, user *domain.User) (int, error) {
	q := `
		INSERT INTO users (username, password_hash, email, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username)
		DO UPDATE SET password_hash = EXCLUDED.password_hash,
		              email = EXCLUDED.email,
		              phone = EXCLUDED.phone,
		              role = EXCLUDED.role
		RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, q,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Phone,
		user.Role,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
