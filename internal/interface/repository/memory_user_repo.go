package repository

import (
	"context"
	"sort"
	"sync"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory UserRepository, safe for concurrent use
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

// Seed stores users as given, keeping any id they carry
func (r *MemoryUserRepository) Seed(users ...entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, users...)
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) FindByAccountID(ctx context.Context, accountID string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].AccountID == accountID {
			out := r.users[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.RLock()
	all := make([]*entity.User, len(r.users))
	for i := range r.users {
		out := r.users[i]
		all[len(all)-1-i] = &out
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].JoinedAt.After(all[j].JoinedAt)
	})
	return page(all, limit, offset), int64(len(all)), nil
}
