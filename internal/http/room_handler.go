package httpapi

import (
	"database/sql"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
	"roomwatch/internal/validate"
)

type RoomHandler struct {
	rooms  repository.RoomsRepository
	logger *zap.Logger
}

func NewRoomHandler(rooms repository.RoomsRepository, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{rooms: rooms, logger: logger}
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListRooms(r.Context())
	if err != nil {
		h.logger.Error("Failed to list rooms", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}
	writeJSON(w, http.StatusOK, Ok(rooms))
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p validate.RoomPayload
	if err := readBodyJSON(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}

	if errs := validate.Room(p); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	room := &domain.Room{ID: p.ID}
	if p.Description != nil {
		room.Description = sql.NullString{String: *p.Description, Valid: true}
	}
	if p.Area != nil {
		room.Area = sql.NullInt64{Int64: int64(*p.Area), Valid: true}
	}
	if p.X != nil {
		room.X = sql.NullInt64{Int64: int64(*p.X), Valid: true}
	}
	if p.Y != nil {
		room.Y = sql.NullInt64{Int64: int64(*p.Y), Valid: true}
	}

	err := h.rooms.CreateRoom(r.Context(), room)
	switch {
	case errors.Is(err, repository.ErrDuplicateRoom):
		writeJSON(w, http.StatusConflict, Fail("Room ID already exists"))
		return
	case errors.Is(err, repository.ErrAreaNotFound):
		writeJSON(w, http.StatusBadRequest, Fail("Area not found"))
		return
	case err != nil:
		h.logger.Error("Failed to create room", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	h.logger.Info("Room created", zap.String("room_id", room.ID))
	writeJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "Room created successfully",
		Data:    map[string]any{"roomId": room.ID},
	})
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.rooms.DeleteRoom(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		writeJSON(w, http.StatusNotFound, Fail("Room not found"))
		return
	case err != nil:
		h.logger.Error("Failed to delete room", zap.String("room_id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	h.logger.Info("Room deleted", zap.String("room_id", id))
	writeJSON(w, http.StatusOK, OkMessage("Room deleted successfully"))
}
