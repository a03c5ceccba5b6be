package usecase

import (
	"context"
	"fmt"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/clock"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// GrowthDayLayout labels growth buckets, e.g. "Jan 5"
const GrowthDayLayout = "Jan 2"

// DashboardListLimit is the size of the recent trips and latest users panels
const DashboardListLimit = 4

// DashboardTrends compares this month with the previous one
type DashboardTrends struct {
	Users       entity.Trend `json:"users"`
	Trips       entity.Trend `json:"trips"`
	ActiveUsers entity.Trend `json:"activeUsers"`
}

// Dashboard is everything the admin dashboard page shows
type Dashboard struct {
	Stats        entity.DashboardStats      `json:"stats"`
	Trends       DashboardTrends            `json:"trends"`
	RecentTrips  []entity.Trip              `json:"recentTrips"`
	UserGrowth   []entity.GrowthPoint       `json:"userGrowth"`
	TripsByStyle []entity.TravelStyleCount  `json:"tripsByTravelStyle"`
	LatestUsers  []entity.UserWithTripCount `json:"latestUsers"`
	TripsPerDay  []entity.GrowthPoint       `json:"tripsPerDay"`
}

// DashboardService computes reporting aggregates over every user and trip
type DashboardService struct {
	userRepo repository.UserRepository
	tripRepo repository.TripRepository
	trips    *TripService
	users    *UserService
	parser   *utils.TripParser
	clock    clock.Clock
	logger   logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	userRepo repository.UserRepository,
	tripRepo repository.TripRepository,
	trips *TripService,
	users *UserService,
	parser *utils.TripParser,
	clk clock.Clock,
	logger logger.Logger,
) *DashboardService {
	return &DashboardService{
		userRepo: userRepo,
		tripRepo: tripRepo,
		trips:    trips,
		users:    users,
		parser:   parser,
		clock:    clk,
		logger:   logger,
	}
}

// MonthWindows returns the first instant of the current month and the inclusive
// bounds of the previous month, in now's location.
func MonthWindows(now time.Time) (startCurrent, startPrev, endPrev time.Time) {
	startCurrent = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startPrev = startCurrent.AddDate(0, -1, 0)
	endPrev = startCurrent.Add(-time.Nanosecond)
	return startCurrent, startPrev, endPrev
}

// countBetween counts items dated within [start, end]; a zero end is unbounded
func countBetween[T any](items []T, dateOf func(T) time.Time, start, end time.Time) int {
	n := 0
	for _, item := range items {
		d := dateOf(item)
		if d.IsZero() || d.Before(start) {
			continue
		}
		if !end.IsZero() && d.After(end) {
			continue
		}
		n++
	}
	return n
}

// ComputeGrowthPerDay buckets items by calendar day. Buckets keep the order in which
// their day was first seen; they are not sorted chronologically. Items without a date are skipped.
func ComputeGrowthPerDay[T any](items []T, dateOf func(T) time.Time) []entity.GrowthPoint {
	points := []entity.GrowthPoint{}
	index := make(map[string]int)
	for _, item := range items {
		d := dateOf(item)
		if d.IsZero() {
			continue
		}
		day := d.Format(GrowthDayLayout)
		if i, ok := index[day]; ok {
			points[i].Count++
			continue
		}
		index[day] = len(points)
		points = append(points, entity.GrowthPoint{Day: day, Count: 1})
	}
	return points
}

func (s *DashboardService) listAll(ctx context.Context) ([]*entity.User, []*entity.TripRecord, error) {
	var (
		users []*entity.User
		trips []*entity.TripRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if users, _, err = s.userRepo.List(gctx, 0, 0); err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if trips, _, err = s.tripRepo.List(gctx, 0, 0); err != nil {
			return fmt.Errorf("failed to list trips: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return users, trips, nil
}

// ComputeUserAndTripStats computes totals and month over month counts
func (s *DashboardService) ComputeUserAndTripStats(ctx context.Context) (*entity.DashboardStats, error) {
	users, trips, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	startCurrent, startPrev, endPrev := MonthWindows(s.clock.Now())
	joinedAt := func(u *entity.User) time.Time { return u.JoinedAt }
	createdAt := func(t *entity.TripRecord) time.Time { return t.CreatedAt }

	regular := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u.Status == entity.UserStatusUser {
			regular = append(regular, u)
		}
	}

	return &entity.DashboardStats{
		TotalUsers: len(users),
		UsersJoined: entity.MonthlyCount{
			CurrentMonth: countBetween(users, joinedAt, startCurrent, time.Time{}),
			LastMonth:    countBetween(users, joinedAt, startPrev, endPrev),
		},
		UserRole: entity.RoleCount{
			Total:        len(regular),
			CurrentMonth: countBetween(regular, joinedAt, startCurrent, time.Time{}),
			LastMonth:    countBetween(regular, joinedAt, startPrev, endPrev),
		},
		TotalTrips: len(trips),
		TripsCreated: entity.MonthlyCount{
			CurrentMonth: countBetween(trips, createdAt, startCurrent, time.Time{}),
			LastMonth:    countBetween(trips, createdAt, startPrev, endPrev),
		},
	}, nil
}

// UserGrowthPerDay buckets users by the day they joined
func (s *DashboardService) UserGrowthPerDay(ctx context.Context) ([]entity.GrowthPoint, error) {
	users, _, err := s.userRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	loc := s.clock.Now().Location()
	return ComputeGrowthPerDay(users, func(u *entity.User) time.Time { return inLocation(u.JoinedAt, loc) }), nil
}

// TripsPerDay buckets trips by the day they were created
func (s *DashboardService) TripsPerDay(ctx context.Context) ([]entity.GrowthPoint, error) {
	trips, _, err := s.tripRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	loc := s.clock.Now().Location()
	return ComputeGrowthPerDay(trips, func(t *entity.TripRecord) time.Time { return inLocation(t.CreatedAt, loc) }), nil
}

// ComputeTripsByTravelStyle counts trips per raw travel style string.
// Styles differing only in case are separate categories.
func (s *DashboardService) ComputeTripsByTravelStyle(ctx context.Context) ([]entity.TravelStyleCount, error) {
	trips, _, err := s.tripRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	counts := []entity.TravelStyleCount{}
	index := make(map[string]int)
	for _, trip := range trips {
		detail := s.parser.ParseTripDetail(trip.TripDetail)
		if detail == nil || detail.TravelStyle == "" {
			continue
		}
		if i, ok := index[detail.TravelStyle]; ok {
			counts[i].Count++
			continue
		}
		index[detail.TravelStyle] = len(counts)
		counts = append(counts, entity.TravelStyleCount{TravelStyle: detail.TravelStyle, Count: 1})
	}
	return counts, nil
}

// GetDashboard loads every dashboard panel concurrently. The recent trips panel
// falls back to an empty list; any other failure fails the whole dashboard.
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{RecentTrips: []entity.Trip{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.ComputeUserAndTripStats(gctx)
		if err != nil {
			return err
		}
		d.Stats = *stats
		return nil
	})
	g.Go(func() error {
		page, err := s.trips.ListTrips(gctx, DashboardListLimit, 0)
		if err != nil {
			s.logger.Warn("Failed to load recent trips for dashboard", "error", err)
			return nil
		}
		d.RecentTrips = page.Trips
		return nil
	})
	g.Go(func() error {
		growth, err := s.UserGrowthPerDay(gctx)
		if err != nil {
			return err
		}
		d.UserGrowth = growth
		return nil
	})
	g.Go(func() error {
		styles, err := s.ComputeTripsByTravelStyle(gctx)
		if err != nil {
			return err
		}
		d.TripsByStyle = styles
		return nil
	})
	g.Go(func() error {
		page, err := s.users.ListUsersWithTripCounts(gctx, DashboardListLimit, 0)
		if err != nil {
			return err
		}
		d.LatestUsers = page.Users
		return nil
	})
	g.Go(func() error {
		perDay, err := s.TripsPerDay(gctx)
		if err != nil {
			return err
		}
		d.TripsPerDay = perDay
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.Trends = DashboardTrends{
		Users:       utils.CalculateTrendPercentage(d.Stats.UsersJoined.CurrentMonth, d.Stats.UsersJoined.LastMonth),
		Trips:       utils.CalculateTrendPercentage(d.Stats.TripsCreated.CurrentMonth, d.Stats.TripsCreated.LastMonth),
		ActiveUsers: utils.CalculateTrendPercentage(d.Stats.UserRole.CurrentMonth, d.Stats.UserRole.LastMonth),
	}
	return d, nil
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(loc)
}
