package repository

import (
	"context"
	"database/sql"

	"roomwatch/internal/domain"
)

type PostgresAreasRepo struct {
	db *sql.DB
}

func NewPostgresAreasRepo(db *sql.DB) *PostgresAreasRepo {
	return &PostgresAreasRepo{db: db}
}

func (r *PostgresAreasRepo) ListAreas(ctx context.Context) ([]domain.Area, error) {
	q := `
		SELECT id, name, description, path, restriction
		FROM areas
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Area{}
	for rows.Next() {
		var a domain.Area
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Path, &a.Restriction); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresAreasRepo) CreateArea(ctx context.Context, area *domain.Area) (int, error) {
	q := `
		INSERT INTO areas (name, description, path, restriction)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, q, area.Name, area.Description, area.Path, area.Restriction).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateArea overwrites all mutable columns; ErrAreaNotFound when the id does
// not exist.
func (r *PostgresAreasRepo) UpdateArea(ctx context.Context, area *domain.Area) error {
	q := `
		UPDATE areas
		SET name = $1, description = $2, path = $3, restriction = $4
		WHERE id = $5`

	res, err := r.db.ExecContext(ctx, q, area.Name, area.Description, area.Path, area.Restriction, area.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAreaNotFound
	}
	return nil
}
