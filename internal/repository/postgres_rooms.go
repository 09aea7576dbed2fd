package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"roomwatch/internal/domain"
)

type PostgresRoomsRepo struct {
	db *sql.DB
}

func NewPostgresRoomsRepo(db *sql.DB) *PostgresRoomsRepo {
	return &PostgresRoomsRepo{db: db}
}

func (r *PostgresRoomsRepo) ListRooms(ctx context.Context) ([]domain.RoomView, error) {
	q := `
		SELECT r.id, r.description, r.area, r.x, r.y, a.name AS area_name
		FROM rooms r
		LEFT JOIN areas a ON r.area = a.id
		ORDER BY r.id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.RoomView{}
	for rows.Next() {
		var (
			room     domain.Room
			areaName sql.NullString
		)
		if err := rows.Scan(&room.ID, &room.Description, &room.Area, &room.X, &room.Y, &areaName); err != nil {
			return nil, err
		}
		v := domain.RoomView{
			ID:          room.ID,
			Description: room.Description.String,
			AreaName:    areaName.String,
		}
		if room.Area.Valid {
			area := int(room.Area.Int64)
			v.Area = &area
		}
		if room.X.Valid {
			x := int(room.X.Int64)
			v.X = &x
		}
		if room.Y.Valid {
			y := int(room.Y.Int64)
			v.Y = &y
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CreateRoom is a single INSERT; a taken id comes back as ErrDuplicateRoom
// and a dangling area reference as ErrAreaNotFound (constraint violations,
// no pre-check round trip).
func (r *PostgresRoomsRepo) CreateRoom(ctx context.Context, room *domain.Room) error {
	q := `
		INSERT INTO rooms (id, description, area, x, y)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, q, room.ID, room.Description, room.Area, room.X, room.Y)
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrDuplicateRoom
		case "23503":
			return ErrAreaNotFound
		}
	}
	return err
}

func (r *PostgresRoomsRepo) DeleteRoom(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
