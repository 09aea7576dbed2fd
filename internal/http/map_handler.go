package httpapi

import (
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/mapview"
	"roomwatch/internal/service"
)

// MapHandler serves marker positions for the campus map. The client passes
// the measured on-screen size of the rendered image and gets back every
// sensor with its pixel position; it re-requests whenever the image's
// bounding box changes.
type MapHandler struct {
	sensors service.SensorService
	logger  *zap.Logger
}

func NewMapHandler(sensors service.SensorService, logger *zap.Logger) *MapHandler {
	return &MapHandler{sensors: sensors, logger: logger}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

type markerView struct {
	Sensor   domain.SensorRow `json:"sensor"`
	Position mapview.Position `json:"position"`
}

func (h *MapHandler) Positions(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	width, errW := strconv.ParseFloat(r.URL.Query().Get("width"), 64)
	height, errH := strconv.ParseFloat(r.URL.Query().Get("height"), 64)
	// ParseFloat accepts "NaN" and "Inf"; both would poison the positions
	// (and NaN is not even JSON-encodable), so only finite positives pass.
	if errW != nil || errH != nil || !finitePositive(width) || !finitePositive(height) {
		writeJSON(w, http.StatusBadRequest, FailValidation([]string{
			"width and height must be positive numbers",
		}))
		return
	}

	rows, err := h.sensors.ListSensors(r.Context())
	if err != nil {
		h.logger.Error("Failed to list sensors for map", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	markers := make([]markerView, 0, len(rows))
	for _, row := range rows {
		markers = append(markers, markerView{
			Sensor:   row,
			Position: mapview.Pixel(row.X, row.Y, width, height),
		})
	}
	writeJSON(w, http.StatusOK, Ok(markers))
}
