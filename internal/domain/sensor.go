package domain

import (
	"database/sql"
	"time"
)

// Sensor statuses. The set is closed; validation rejects anything else.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusError       = "error"
	StatusMaintenance = "maintenance"
)

// ValidStatus reports whether s is one of the four sensor statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusError, StatusMaintenance:
		return true
	}
	return false
}

// Sensor 传感器领域模型（对应 sensors 表）
// Coordinates live in the logical map space [0,800]x[0,600].
type Sensor struct {
	ID        string         `db:"id"`
	X         int            `db:"x"`
	Y         int            `db:"y"`
	RoomID    sql.NullString `db:"room_id"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// SensorView is the wire shape for a stored sensor.
type SensorView struct {
	ID        string    `json:"id"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	RoomID    string    `json:"room_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Sensor) View() SensorView {
	return SensorView{
		ID:        s.ID,
		X:         s.X,
		Y:         s.Y,
		RoomID:    s.RoomID.String,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SensorRow is a sensor joined with room/area names for GET /api/sensors.
type SensorRow struct {
	SensorView
	RoomName string `json:"room_name,omitempty"`
	AreaName string `json:"area_name,omitempty"`
}
