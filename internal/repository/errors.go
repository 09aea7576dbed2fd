package repository

import "errors"

// Sentinel errors the handlers translate into status codes. Conflicts and
// dangling references surface from single conditional writes (unique / FK
// constraints), not from separate existence queries, so two concurrent
// writers cannot both slip past a pre-check.
var (
	ErrDuplicateSensor = errors.New("sensor id already exists")
	ErrSensorNotFound  = errors.New("sensor not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrDuplicateRoom   = errors.New("room id already exists")
	ErrAreaNotFound    = errors.New("area not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrEmptyUpdate refuses an update that names no column; executing it
	// anyway would still bump updated_at on an otherwise untouched row.
	ErrEmptyUpdate = errors.New("sensor update has no fields")
)
