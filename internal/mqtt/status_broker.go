package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
)

// StatusWriter is the slice of SensorService the broker needs.
type StatusWriter interface {
	SetStatus(ctx context.Context, id, status string) (*domain.Sensor, error)
}

// StatusBroker applies sensor status reports arriving over MQTT. Topic shape:
// roomwatch/sensors/<sensor_id>/status, payload {"status": "occupied"}.
// Updates ride the same partial-update path as PUT /api/sensors/{id}, so the
// status enum and the not-found rules hold for ingested reports too.
type StatusBroker struct {
	sensors StatusWriter
	logger  *zap.Logger
}

func NewStatusBroker(sensors StatusWriter, logger *zap.Logger) *StatusBroker {
	return &StatusBroker{sensors: sensors, logger: logger}
}

type statusMessage struct {
	Status string `json:"status"`
}

// HandleMessage implements MessageHandler.
func (b *StatusBroker) HandleMessage(topic string, payload []byte) error {
	sensorID, err := sensorIDFromTopic(topic)
	if err != nil {
		return err
	}

	var msg statusMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal status message: %w", err)
	}
	if msg.Status == "" {
		return fmt.Errorf("status message without status field on %s", topic)
	}

	if _, err := b.sensors.SetStatus(context.Background(), sensorID, msg.Status); err != nil {
		return fmt.Errorf("failed to apply status %q to sensor %s: %w", msg.Status, sensorID, err)
	}

	b.logger.Info("Sensor status ingested",
		zap.String("sensor_id", sensorID),
		zap.String("status", msg.Status),
	)
	return nil
}

// sensorIDFromTopic pulls <sensor_id> out of roomwatch/sensors/<id>/status.
func sensorIDFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != "roomwatch" || parts[1] != "sensors" || parts[3] != "status" || parts[2] == "" {
		return "", fmt.Errorf("unexpected topic shape: %s", topic)
	}
	return parts[2], nil
}
