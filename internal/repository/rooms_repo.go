package repository

import (
	"context"

	"roomwatch/internal/domain"
)

// RoomsRepository 房间Repository接口
type RoomsRepository interface {
	ListRooms(ctx context.Context) ([]domain.RoomView, error)
	CreateRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, id string) error
}
