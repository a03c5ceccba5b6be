package usecase

import (
	"context"
	"errors"
	"fmt"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/clock"
	"tripboard-service/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// UserPage is a page of users with their trip counts
type UserPage struct {
	Users []entity.UserWithTripCount `json:"users"`
	Total int64                      `json:"total"`
}

// UserService manages dashboard users
type UserService struct {
	userRepo repository.UserRepository
	tripRepo repository.TripRepository
	clock    clock.Clock
	logger   logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, tripRepo repository.TripRepository, clk clock.Clock, logger logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		tripRepo: tripRepo,
		clock:    clk,
		logger:   logger,
	}
}

// EnsureUser returns the user for an identity, creating it with the "user" status on first sign-in
func (s *UserService) EnsureUser(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	existing, err := s.userRepo.FindByAccountID(ctx, identity.AccountID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := &entity.User{
		AccountID: identity.AccountID,
		Name:      identity.Name,
		Email:     identity.Email,
		ImageURL:  identity.ImageURL,
		JoinedAt:  s.clock.Now().UTC(),
		Status:    entity.UserStatusUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, persistenceError("create user", err)
	}

	s.logger.Info("Created user on first sign-in", "userId", user.ID, "accountId", user.AccountID)
	return user, nil
}

// GetByAccountID returns the user linked to an identity-provider account
func (s *UserService) GetByAccountID(ctx context.Context, accountID string) (*entity.User, error) {
	user, err := s.userRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("User not found", err)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsersWithTripCounts returns a page of users, each with the number of trips they created
func (s *UserService) ListUsersWithTripCounts(ctx context.Context, limit, offset int) (*UserPage, error) {
	users, total, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]entity.UserWithTripCount, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, user := range users {
		g.Go(func() error {
			count, err := s.tripRepo.CountByUserID(gctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to count trips for user %s: %w", user.ID, err)
			}
			out[i] = entity.UserWithTripCount{User: *user, ItineraryCreated: count}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &UserPage{Users: out, Total: total}, nil
}
