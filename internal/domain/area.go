package domain

import (
	"database/sql"
)

// Area 区域领域模型（对应 areas 表）
// An area groups rooms (building / zone) on the campus map.
type Area struct {
	ID          int            `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Path        sql.NullString `db:"path"`
	Restriction sql.NullString `db:"restriction"`
}

// AreaView is the wire shape for GET /api/areas.
type AreaView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path,omitempty"`
	Restriction string `json:"restriction,omitempty"`
}

func (a *Area) View() AreaView {
	return AreaView{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description.String,
		Path:        a.Path.String,
		Restriction: a.Restriction.String,
	}
}
