package repository

import (
	"context"
	"sort"
	"sync"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"

	"github.com/google/uuid"
)

// MemoryTripRepository is an in-memory TripRepository, safe for concurrent use
type MemoryTripRepository struct {
	mu      sync.RWMutex
	records []entity.TripRecord
}

// NewMemoryTripRepository creates an empty in-memory trip repository
func NewMemoryTripRepository() *MemoryTripRepository {
	return &MemoryTripRepository{}
}

// Seed stores records as given, keeping any id they carry
func (r *MemoryTripRepository) Seed(records ...entity.TripRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range records {
		r.records = append(r.records, cloneTripRecord(&record))
	}
}

func (r *MemoryTripRepository) Create(ctx context.Context, record *entity.TripRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = uuid.NewString()
	r.records = append(r.records, cloneTripRecord(record))
	return nil
}

func (r *MemoryTripRepository) FindByID(ctx context.Context, id string) (*entity.TripRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			out := cloneTripRecord(&r.records[i])
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryTripRepository) List(ctx context.Context, limit, offset int) ([]*entity.TripRecord, int64, error) {
	r.mu.RLock()
	all := make([]*entity.TripRecord, len(r.records))
	for i := range r.records {
		out := cloneTripRecord(&r.records[i])
		all[len(all)-1-i] = &out
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return page(all, limit, offset), int64(len(all)), nil
}

func (r *MemoryTripRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for i := range r.records {
		if r.records[i].UserID == userID {
			n++
		}
	}
	return n, nil
}

func cloneTripRecord(record *entity.TripRecord) entity.TripRecord {
	out := *record
	if record.ImageURLs != nil {
		out.ImageURLs = append([]string{}, record.ImageURLs...)
	}
	return out
}

// page applies limit/offset; a limit <= 0 keeps everything after offset
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	if offset > 0 {
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
