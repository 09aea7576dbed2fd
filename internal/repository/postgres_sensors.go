package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"roomwatch/internal/domain"
)

type PostgresSensorsRepo struct {
	db *sql.DB
}

func NewPostgresSensorsRepo(db *sql.DB) *PostgresSensorsRepo {
	return &PostgresSensorsRepo{db: db}
}

func (r *PostgresSensorsRepo) ListSensors(ctx context.Context) ([]domain.SensorRow, error) {
	q := `
		SELECT
			s.id, s.x, s.y, s.room_id, s.status, s.created_at, s.updated_at,
			rm.description AS room_name,
			a.name AS area_name
		FROM sensors s
		LEFT JOIN rooms rm ON s.room_id = rm.id
		LEFT JOIN areas a ON rm.area = a.id
		ORDER BY s.id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SensorRow{}
	for rows.Next() {
		var (
			s        domain.Sensor
			roomName sql.NullString
			areaName sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.X, &s.Y, &s.RoomID, &s.Status, &s.CreatedAt, &s.UpdatedAt, &roomName, &areaName); err != nil {
			return nil, err
		}
		out = append(out, domain.SensorRow{
			SensorView: s.View(),
			RoomName:   roomName.String,
			AreaName:   areaName.String,
		})
	}
	return out, rows.Err()
}

func (r *PostgresSensorsRepo) GetSensor(ctx context.Context, id string) (*domain.Sensor, error) {
	q := `
		SELECT id, x, y, room_id, status, created_at, updated_at
		FROM sensors
		WHERE id = $1`

	var s domain.Sensor
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.X, &s.Y, &s.RoomID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSensorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSensor is a single INSERT. Duplicate ids and dangling room
// references come back from the constraints themselves, so concurrent
// creates of the same id cannot both get through.
func (r *PostgresSensorsRepo) CreateSensor(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error) {
	q := `
		INSERT INTO sensors (id, x, y, room_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	stored := *sensor
	err := r.db.QueryRowContext(ctx, q,
		sensor.ID,
		sensor.X,
		sensor.Y,
		sensor.RoomID,
		sensor.Status,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return nil, ErrDuplicateSensor
		case "23503":
			return nil, ErrRoomNotFound
		}
	}
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// UpdateSensor builds a SET list from the supplied fields only; untouched
// columns keep their values. updated_at always moves.
func (r *PostgresSensorsRepo) UpdateSensor(ctx context.Context, id string, upd SensorUpdate) (time.Time, error) {
	if upd.Empty() {
		return time.Time{}, ErrEmptyUpdate
	}

	set := []string{}
	args := []any{}
	argN := 1

	if upd.X != nil {
		set = append(set, fmt.Sprintf("x = $%d", argN))
		args = append(args, *upd.X)
		argN++
	}
	if upd.Y != nil {
		set = append(set, fmt.Sprintf("y = $%d", argN))
		args = append(args, *upd.Y)
		argN++
	}
	if upd.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", argN))
		args = append(args, *upd.Status)
		argN++
	}
	if upd.RoomID != nil {
		set = append(set, fmt.Sprintf("room_id = $%d", argN))
		if *upd.RoomID == "" {
			args = append(args, nil)
		} else {
			args = append(args, *upd.RoomID)
		}
		argN++
	}

	set = append(set, "updated_at = now()")

	q := `UPDATE sensors SET ` + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING updated_at", argN)
	args = append(args, id)

	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrSensorNotFound
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		return time.Time{}, ErrRoomNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return updatedAt, nil
}

func (r *PostgresSensorsRepo) DeleteSensor(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sensors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSensorNotFound
	}
	return nil
}
