package repository

import (
	"context"

	"tripboard-service/internal/domain/entity"
)

// UserRepository defines the storage operations for users.
// List returns the most recently joined first; a limit <= 0 returns every user.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByAccountID(ctx context.Context, accountID string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error)
}
