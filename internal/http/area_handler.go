package httpapi

import (
	"database/sql"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
)

type AreaHandler struct {
	areas  repository.AreasRepository
	logger *zap.Logger
}

func NewAreaHandler(areas repository.AreasRepository, logger *zap.Logger) *AreaHandler {
	return &AreaHandler{areas: areas, logger: logger}
}

type areaPayload struct {
	ID          *int    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Path        *string `json:"path"`
	Restriction *string `json:"restriction"`
}

func (p areaPayload) toDomain() *domain.Area {
	a := &domain.Area{Name: p.Name}
	if p.ID != nil {
		a.ID = *p.ID
	}
	if p.Description != nil {
		a.Description = sql.NullString{String: *p.Description, Valid: true}
	}
	if p.Path != nil {
		a.Path = sql.NullString{String: *p.Path, Valid: true}
	}
	if p.Restriction != nil {
		a.Restriction = sql.NullString{String: *p.Restriction, Valid: true}
	}
	return a
}

func (h *AreaHandler) List(w http.ResponseWriter, r *http.Request) {
	areas, err := h.areas.ListAreas(r.Context())
	if err != nil {
		h.logger.Error("Failed to list areas", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	views := make([]domain.AreaView, 0, len(areas))
	for i := range areas {
		views = append(views, areas[i].View())
	}
	writeJSON(w, http.StatusOK, Ok(views))
}

func (h *AreaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p areaPayload
	if err := readBodyJSON(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}
	if p.Name == "" {
		writeJSON(w, http.StatusBadRequest, FailValidation([]string{"Area name is required"}))
		return
	}

	id, err := h.areas.CreateArea(r.Context(), p.toDomain())
	if err != nil {
		h.logger.Error("Failed to create area", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	h.logger.Info("Area created", zap.Int("area_id", id))
	writeJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "Area created successfully",
		Data:    map[string]any{"areaId": id},
	})
}

// Update overwrites an area identified by the body's id, matching the
// client's PUT /api/areas contract.
func (h *AreaHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p areaPayload
	if err := readBodyJSON(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}
	if p.ID == nil || *p.ID <= 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation([]string{"Area ID must be a positive integer"}))
		return
	}
	if p.Name == "" {
		writeJSON(w, http.StatusBadRequest, FailValidation([]string{"Area name is required"}))
		return
	}

	err := h.areas.UpdateArea(r.Context(), p.toDomain())
	switch {
	case errors.Is(err, repository.ErrAreaNotFound):
		writeJSON(w, http.StatusNotFound, Fail("Area not found"))
		return
	case err != nil:
		h.logger.Error("Failed to update area", zap.Int("area_id", *p.ID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	h.logger.Info("Area updated", zap.Int("area_id", *p.ID))
	writeJSON(w, http.StatusOK, OkMessage("Area updated successfully"))
}
