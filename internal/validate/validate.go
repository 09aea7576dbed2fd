// Package validate holds the payload validation rules for the HTTP boundary.
// Every function is pure: it collects all violations into an ordered list of
// human-readable messages and never touches storage. Referential checks
// (room existence, duplicate ids) happen in the repository layer.
package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"roomwatch/internal/domain"
)

// Logical coordinate space of the campus map.
const (
	MaxX = 800
	MaxY = 600
)

const (
	maxSensorIDLen = 50
	maxRoomIDLen   = 10
	maxUsernameLen = 50
	minPasswordLen = 3
	maxPasswordLen = 72 // bcrypt input limit
	maxEmailLen    = 100
	maxPhoneLen    = 20
	maxDescLen     = 255
)

var (
	idPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

// SensorPayload is the decoded body of sensor create/update requests.
// Pointer fields distinguish "absent" from zero values, which is what makes
// partial updates possible.
type SensorPayload struct {
	ID     *string `json:"id"`
	X      *int    `json:"x"`
	Y      *int    `json:"y"`
	Status *string `json:"status"`
	RoomID *string `json:"room_id"`
}

// Empty reports whether no field was supplied at all.
func (p SensorPayload) Empty() bool {
	return p.ID == nil && p.X == nil && p.Y == nil && p.Status == nil && p.RoomID == nil
}

// Sensor checks a sensor payload. For creates (isUpdate=false) id/x/y are
// required; for updates only supplied fields are checked. Messages come back
// in field order: id, x, y, status, room_id.
func Sensor(p SensorPayload, isUpdate bool) []string {
	var errs []string

	if p.ID == nil {
		if !isUpdate {
			errs = append(errs, "Sensor ID is required")
		}
	} else {
		switch {
		case *p.ID == "":
			errs = append(errs, "Sensor ID is required")
		case len(*p.ID) > maxSensorIDLen:
			errs = append(errs, fmt.Sprintf("Sensor ID must be at most %d characters", maxSensorIDLen))
		case !idPattern.MatchString(*p.ID):
			errs = append(errs, "Sensor ID may only contain letters, digits, underscores and hyphens")
		}
	}

	if p.X == nil {
		if !isUpdate {
			errs = append(errs, "X is required")
		}
	} else if *p.X < 0 || *p.X > MaxX {
		errs = append(errs, fmt.Sprintf("X must be between 0-%d", MaxX))
	}

	if p.Y == nil {
		if !isUpdate {
			errs = append(errs, "Y is required")
		}
	} else if *p.Y < 0 || *p.Y > MaxY {
		errs = append(errs, fmt.Sprintf("Y must be between 0-%d", MaxY))
	}

	if p.Status != nil && !domain.ValidStatus(*p.Status) {
		errs = append(errs, "Status must be one of: available, occupied, error, maintenance")
	}

	if p.RoomID != nil && *p.RoomID != "" && len(*p.RoomID) > maxRoomIDLen {
		errs = append(errs, fmt.Sprintf("Room ID must be at most %d characters", maxRoomIDLen))
	}

	return errs
}

// RoomPayload is the decoded body of POST /api/rooms.
type RoomPayload struct {
	ID          string  `json:"id"`
	Description *string `json:"description"`
	Area        *int    `json:"area"`
	X           *int    `json:"x"`
	Y           *int    `json:"y"`
}

// Room checks a room payload.
func Room(p RoomPayload) []string {
	var errs []string

	switch {
	case p.ID == "":
		errs = append(errs, "Room ID is required")
	case len(p.ID) > maxRoomIDLen:
		errs = append(errs, fmt.Sprintf("Room ID must be at most %d characters", maxRoomIDLen))
	}

	if p.Description != nil && utf8.RuneCountInString(*p.Description) > maxDescLen {
		errs = append(errs, fmt.Sprintf("Description must be at most %d characters", maxDescLen))
	}

	if p.Area != nil && *p.Area <= 0 {
		errs = append(errs, "Area must be a positive integer")
	}

	return errs
}

// UserPayload is a user record before hashing, as accepted by the admin
// seeding tool. Users are otherwise administered outside this service.
type UserPayload struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *int    `json:"role"`
}

// User checks a user payload.
func User(p UserPayload) []string {
	var errs []string

	switch {
	case p.Username == "":
		errs = append(errs, "Username is required")
	case len(p.Username) > maxUsernameLen:
		errs = append(errs, fmt.Sprintf("Username must be at most %d characters", maxUsernameLen))
	case !idPattern.MatchString(p.Username):
		errs = append(errs, "Username may only contain letters, digits, underscores and hyphens")
	}

	switch {
	case len(p.Password) < minPasswordLen:
		errs = append(errs, fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	case len(p.Password) > maxPasswordLen:
		errs = append(errs, fmt.Sprintf("Password must be at most %d characters", maxPasswordLen))
	}

	if p.Email != nil && *p.Email != "" {
		if utf8.RuneCountInString(*p.Email) > maxEmailLen {
			errs = append(errs, fmt.Sprintf("Email must be at most %d characters", maxEmailLen))
		} else if !emailPattern.MatchString(*p.Email) {
			errs = append(errs, "Email format is invalid")
		}
	}

	if p.Phone != nil && *p.Phone != "" {
		if utf8.RuneCountInString(*p.Phone) > maxPhoneLen {
			errs = append(errs, fmt.Sprintf("Phone must be at most %d characters", maxPhoneLen))
		} else if !phonePattern.MatchString(*p.Phone) {
			errs = append(errs, "Phone may only contain digits, +, -, spaces and parentheses")
		}
	}

	if p.Role != nil && *p.Role != domain.RoleUser && *p.Role != domain.RoleAdmin {
		errs = append(errs, "Role must be 0 (user) or 1 (admin)")
	}

	return errs
}
