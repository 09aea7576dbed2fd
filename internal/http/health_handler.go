package httpapi

import (
	"database/sql"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db        *sql.DB
	logger    *zap.Logger
	startedAt time.Time
}

func NewHealthHandler(db *sql.DB, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger, startedAt: time.Now()}
}

// Health is the liveness probe; it answers regardless of database state.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "roomwatch API is running",
		Data:    map[string]any{"timestamp": time.Now().UTC().Format(time.RFC3339)},
	})
}

// Status adds service info and database reachability.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "disabled"
	} else if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Warn("Status probe: database unreachable", zap.Error(err))
		dbStatus = "unreachable"
	}

	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"service":        "roomwatch",
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
		"database":       dbStatus,
	}))
}
