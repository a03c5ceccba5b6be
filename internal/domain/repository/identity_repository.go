package repository

import (
	"context"

	"tripboard-service/internal/domain/entity"
)

// IdentityRepository drives an OAuth provider's consent flow
type IdentityRepository interface {
	AuthCodeURL(state string) string
	FetchIdentity(ctx context.Context, code string) (*entity.Identity, error)
}
