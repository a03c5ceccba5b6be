package usecase

import (
	"context"
	"errors"
	"fmt"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// RecentTripsLimit is the number of trips suggested next to a trip detail
const RecentTripsLimit = 6

// TripPage is a page of normalized trips
type TripPage struct {
	Trips []entity.Trip `json:"trips"`
	Total int64         `json:"total"`
}

// TripDetail is a trip with a short list of other recent trips
type TripDetail struct {
	Trip        entity.Trip   `json:"trip"`
	RecentTrips []entity.Trip `json:"recentTrips"`
}

// TripService reads stored trips
type TripService struct {
	tripRepo repository.TripRepository
	parser   *utils.TripParser
	logger   logger.Logger
}

// NewTripService creates a new trip service
func NewTripService(tripRepo repository.TripRepository, parser *utils.TripParser, logger logger.Logger) *TripService {
	return &TripService{
		tripRepo: tripRepo,
		parser:   parser,
		logger:   logger,
	}
}

// ListTrips returns a page of trips, newest first. Corrupt records are skipped.
func (s *TripService) ListTrips(ctx context.Context, limit, offset int) (*TripPage, error) {
	records, total, err := s.tripRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return &TripPage{
		Trips: s.parser.TransformTripRecords(records),
		Total: total,
	}, nil
}

// GetTrip returns one normalized trip
func (s *TripService) GetTrip(ctx context.Context, id string) (*entity.Trip, error) {
	record, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Trip not found", err)
		}
		return nil, fmt.Errorf("failed to get trip %s: %w", id, err)
	}
	trip := s.parser.TransformTripRecord(record)
	return &trip, nil
}

// GetTripDetail loads a trip and the recent trips list concurrently. A failure
// loading recent trips degrades to an empty list; a failure loading the trip is returned.
func (s *TripService) GetTripDetail(ctx context.Context, id string) (*TripDetail, error) {
	var (
		trip   *entity.Trip
		recent = []entity.Trip{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.GetTrip(gctx, id)
		if err != nil {
			return err
		}
		trip = t
		return nil
	})
	g.Go(func() error {
		page, err := s.ListTrips(gctx, RecentTripsLimit, 0)
		if err != nil {
			s.logger.Warn("Failed to load recent trips", "error", err)
			return nil
		}
		recent = page.Trips
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TripDetail{Trip: *trip, RecentTrips: recent}, nil
}
