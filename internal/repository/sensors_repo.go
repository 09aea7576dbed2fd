package repository

import (
	"context"
	"time"

	"roomwatch/internal/domain"
)

// SensorUpdate carries the supplied subset of mutable sensor fields.
// nil means "leave the column alone"; an empty RoomID detaches the sensor
// from its room (column set to NULL).
type SensorUpdate struct {
	X      *int
	Y      *int
	Status *string
	RoomID *string
}

// Empty reports whether the update would touch no column; UpdateSensor
// rejects such updates with ErrEmptyUpdate.
func (u SensorUpdate) Empty() bool {
	return u.X == nil && u.Y == nil && u.Status == nil && u.RoomID == nil
}

// SensorsRepository 传感器Repository接口
type SensorsRepository interface {
	ListSensors(ctx context.Context) ([]domain.SensorRow, error)
	GetSensor(ctx context.Context, id string) (*domain.Sensor, error)

	// CreateSensor inserts with server-assigned timestamps and returns the
	// stored record. ErrDuplicateSensor / ErrRoomNotFound on constraint hits.
	CreateSensor(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error)

	// UpdateSensor touches only the supplied columns plus updated_at and
	// returns the new updated_at. ErrSensorNotFound when no row matched.
	UpdateSensor(ctx context.Context, id string, upd SensorUpdate) (time.Time, error)

	DeleteSensor(ctx context.Context, id string) error
}
