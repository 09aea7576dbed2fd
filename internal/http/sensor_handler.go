package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
	"roomwatch/internal/service"
	"roomwatch/internal/validate"
)

type SensorHandler struct {
	sensors service.SensorService
	logger  *zap.Logger
}

func NewSensorHandler(sensors service.SensorService, logger *zap.Logger) *SensorHandler {
	return &SensorHandler{sensors: sensors, logger: logger}
}

func (h *SensorHandler) List(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	rows, err := h.sensors.ListSensors(r.Context())
	if err != nil {
		h.logger.Error("Failed to list sensors", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}
	writeJSON(w, http.StatusOK, Ok(rows))
}

func (h *SensorHandler) Create(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var p validate.SensorPayload
	if err := readBodyJSON(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}

	stored, err := h.sensors.CreateSensor(r.Context(), p)
	if err != nil {
		h.writeSensorError(w, err)
		return
	}

	h.logger.Info("Sensor create accepted",
		zap.String("sensor_id", stored.ID),
		zap.String("by", user.Username),
	)
	writeJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "Sensor created successfully",
		Data:    stored.View(),
	})
}

func (h *SensorHandler) Update(w http.ResponseWriter, r *http.Request, user *domain.User, id string) {
	var p validate.SensorPayload
	if err := readBodyJSON(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}

	merged, err := h.sensors.UpdateSensor(r.Context(), id, p)
	if err != nil {
		h.writeSensorError(w, err)
		return
	}

	h.logger.Info("Sensor update accepted",
		zap.String("sensor_id", id),
		zap.String("by", user.Username),
	)
	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Sensor updated successfully",
		Data:    merged.View(),
	})
}

func (h *SensorHandler) Delete(w http.ResponseWriter, r *http.Request, user *domain.User, id string) {
	if err := h.sensors.DeleteSensor(r.Context(), id); err != nil {
		h.writeSensorError(w, err)
		return
	}

	h.logger.Info("Sensor delete accepted",
		zap.String("sensor_id", id),
		zap.String("by", user.Username),
	)
	writeJSON(w, http.StatusOK, OkMessage("Sensor deleted successfully"))
}

// writeSensorError maps service/repository errors onto the taxonomy:
// 400 validation or dangling room, 404 missing sensor, 409 duplicate id,
// 500 for everything the database threw at us.
func (h *SensorHandler) writeSensorError(w http.ResponseWriter, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, FailValidation(ve.Messages))
		return
	}
	switch {
	case errors.Is(err, service.ErrNoFields):
		writeJSON(w, http.StatusBadRequest, Fail("No fields supplied"))
	case errors.Is(err, repository.ErrRoomNotFound):
		writeJSON(w, http.StatusBadRequest, Fail("Room not found"))
	case errors.Is(err, repository.ErrDuplicateSensor):
		writeJSON(w, http.StatusConflict, Fail("Sensor ID already exists"))
	case errors.Is(err, repository.ErrSensorNotFound):
		writeJSON(w, http.StatusNotFound, Fail("Sensor not found"))
	default:
		h.logger.Error("Sensor operation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
	}
}
