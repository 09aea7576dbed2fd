package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
	"roomwatch/internal/validate"
)

// SensorService 传感器业务逻辑
// Create/update/delete semantics live here; handlers only translate errors
// into status codes.
type SensorService interface {
	ListSensors(ctx context.Context) ([]domain.SensorRow, error)
	CreateSensor(ctx context.Context, p validate.SensorPayload) (*domain.Sensor, error)

	// UpdateSensor applies a partial update and returns the merged view:
	// the prior row overlaid with the changed fields (last write wins, not
	// re-read from storage).
	UpdateSensor(ctx context.Context, id string, p validate.SensorPayload) (*domain.Sensor, error)

	DeleteSensor(ctx context.Context, id string) error

	// SetStatus is the ingest path (MQTT); it rides the same partial-update
	// logic with only the status field supplied.
	SetStatus(ctx context.Context, id, status string) (*domain.Sensor, error)
}

type sensorService struct {
	sensors repository.SensorsRepository
	logger  *zap.Logger
}

func NewSensorService(sensors repository.SensorsRepository, logger *zap.Logger) SensorService {
	return &sensorService{sensors: sensors, logger: logger}
}

func (s *sensorService) ListSensors(ctx context.Context) ([]domain.SensorRow, error) {
	return s.sensors.ListSensors(ctx)
}

func (s *sensorService) CreateSensor(ctx context.Context, p validate.SensorPayload) (*domain.Sensor, error) {
	if errs := validate.Sensor(p, false); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	sensor := &domain.Sensor{
		ID:     *p.ID,
		X:      *p.X,
		Y:      *p.Y,
		Status: domain.StatusAvailable,
	}
	if p.Status != nil {
		sensor.Status = *p.Status
	}
	if p.RoomID != nil && *p.RoomID != "" {
		sensor.RoomID = sql.NullString{String: *p.RoomID, Valid: true}
	}

	stored, err := s.sensors.CreateSensor(ctx, sensor)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sensor created",
		zap.String("sensor_id", stored.ID),
		zap.Int("x", stored.X),
		zap.Int("y", stored.Y),
		zap.String("room_id", stored.RoomID.String),
		zap.String("status", stored.Status),
	)
	return stored, nil
}

func (s *sensorService) UpdateSensor(ctx context.Context, id string, p validate.SensorPayload) (*domain.Sensor, error) {
	// the path carries the id; an id in the body is ignored
	p.ID = nil

	if p.Empty() {
		return nil, ErrNoFields
	}
	if errs := validate.Sensor(p, true); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	prior, err := s.sensors.GetSensor(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := repository.SensorUpdate{X: p.X, Y: p.Y, Status: p.Status, RoomID: p.RoomID}
	updatedAt, err := s.sensors.UpdateSensor(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	merged := *prior
	merged.UpdatedAt = updatedAt
	if p.X != nil {
		merged.X = *p.X
	}
	if p.Y != nil {
		merged.Y = *p.Y
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	if p.RoomID != nil {
		if *p.RoomID == "" {
			merged.RoomID = sql.NullString{}
		} else {
			merged.RoomID = sql.NullString{String: *p.RoomID, Valid: true}
		}
	}

	s.logger.Info("Sensor updated",
		zap.String("sensor_id", id),
		zap.String("status", merged.Status),
	)
	return &merged, nil
}

func (s *sensorService) DeleteSensor(ctx context.Context, id string) error {
	idCopy := id
	if errs := validate.Sensor(validate.SensorPayload{ID: &idCopy}, true); len(errs) > 0 {
		return &ValidationError{Messages: errs}
	}

	if err := s.sensors.DeleteSensor(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Sensor deleted", zap.String("sensor_id", id))
	return nil
}

func (s *sensorService) SetStatus(ctx context.Context, id, status string) (*domain.Sensor, error) {
	return s.UpdateSensor(ctx, id, validate.SensorPayload{Status: &status})
}
