package handler

import (
	"context"

	"tripboard-service/internal/domain/entity"
)

type userContextKey struct{}

// WithUser returns a context carrying the signed-in user
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the signed-in user, or nil
func UserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userContextKey{}).(*entity.User)
	return user
}
