package domain

import (
	"database/sql"
)

// Room 房间领域模型（对应 rooms 表）
// area is an optional FK to areas(id); x/y are optional map coordinates.
type Room struct {
	ID          string         `db:"id"`
	Description sql.NullString `db:"description"`
	Area        sql.NullInt64  `db:"area"`
	X           sql.NullInt64  `db:"x"`
	Y           sql.NullInt64  `db:"y"`
}

// RoomView is a room row joined with its area name for GET /api/rooms.
type RoomView struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Area        *int   `json:"area,omitempty"`
	X           *int   `json:"x,omitempty"`
	Y           *int   `json:"y,omitempty"`
	AreaName    string `json:"area_name,omitempty"`
}
