package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	repo "tripboard-service/internal/interface/repository"
)

var errStoreDown = errors.New("store unavailable")

type stubTextGen struct {
	mu      sync.Mutex
	replies []string
	errs    []error
	calls   int
	model   string
	prompt  string
}

// GenerateContent answers with the next scripted reply or error; the last entry repeats
func (s *stubTextGen) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	s.model, s.prompt = model, prompt

	if len(s.errs) > 0 {
		if err := s.errs[min(i, len(s.errs)-1)]; err != nil {
			return "", err
		}
	}
	if len(s.replies) == 0 {
		return "", nil
	}
	return s.replies[min(i, len(s.replies)-1)], nil
}

func (s *stubTextGen) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubImages struct {
	urls  []string
	err   error
	calls atomic.Int32
	query string
}

func (s *stubImages) SearchPhotos(ctx context.Context, query string) ([]string, error) {
	s.calls.Add(1)
	s.query = query
	return s.urls, s.err
}

// tripStore wraps the in-memory store with call counting and failure injection
type tripStore struct {
	*repo.MemoryTripRepository
	creates   atomic.Int32
	createErr error
	listErr   error
	pagedErr  error
	findErr   error
}

func newTripStore() *tripStore {
	return &tripStore{MemoryTripRepository: repo.NewMemoryTripRepository()}
}

func (s *tripStore) Create(ctx context.Context, record *entity.TripRecord) error {
	s.creates.Add(1)
	if s.createErr != nil {
		return s.createErr
	}
	return s.MemoryTripRepository.Create(ctx, record)
}

func (s *tripStore) FindByID(ctx context.Context, id string) (*entity.TripRecord, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.MemoryTripRepository.FindByID(ctx, id)
}

func (s *tripStore) List(ctx context.Context, limit, offset int) ([]*entity.TripRecord, int64, error) {
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	if limit > 0 && s.pagedErr != nil {
		return nil, 0, s.pagedErr
	}
	return s.MemoryTripRepository.List(ctx, limit, offset)
}

type userStore struct {
	*repo.MemoryUserRepository
	listErr error
}

func newUserStore() *userStore {
	return &userStore{MemoryUserRepository: repo.NewMemoryUserRepository()}
}

func (s *userStore) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	return s.MemoryUserRepository.List(ctx, limit, offset)
}

var (
	_ repository.TripRepository = (*tripStore)(nil)
	_ repository.UserRepository = (*userStore)(nil)
)
