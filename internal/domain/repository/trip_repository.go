package repository

import (
	"context"

	"tripboard-service/internal/domain/entity"
)

// TripRepository defines the storage operations for trip records.
// List returns newest first; a limit <= 0 returns every record.
type TripRepository interface {
	Create(ctx context.Context, record *entity.TripRecord) error
	FindByID(ctx context.Context, id string) (*entity.TripRecord, error)
	List(ctx context.Context, limit, offset int) ([]*entity.TripRecord, int64, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
}
