package repository

import (
	"context"

	"roomwatch/internal/domain"
)

// AreasRepository 区域Repository接口
type AreasRepository interface {
	ListAreas(ctx context.Context) ([]domain.Area, error)
	CreateArea(ctx context.Context, area *domain.Area) (int, error)
	UpdateArea(ctx context.Context, area *domain.Area) error
}
