package usecase_test

import (
	"context"
	"testing"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/usecase"
	"tripboard-service/pkg/clock"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dashboardNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 10, 0, 0, 0, time.UTC)
}

func newDashboard(users *userStore, trips *tripStore) *usecase.DashboardService {
	log := logger.NewNopLogger()
	clk := clock.Fixed{At: dashboardNow}
	parser := utils.NewTripParser(log)
	tripSvc := usecase.NewTripService(trips, parser, log)
	userSvc := usecase.NewUserService(users, trips, clk, log)
	return usecase.NewDashboardService(users, trips, tripSvc, userSvc, parser, clk, log)
}

func seededStores() (*userStore, *tripStore) {
	users := newUserStore()
	users.Seed(
		entity.User{ID: "u1", AccountID: "a1", Name: "Ana", Status: entity.UserStatusUser, JoinedAt: day(time.October, 1)},
		entity.User{ID: "u2", AccountID: "a2", Name: "Ben", Status: entity.UserStatusAdmin, JoinedAt: day(time.October, 31)},
		entity.User{ID: "u3", AccountID: "a3", Name: "Cy", Status: entity.UserStatusUser, JoinedAt: day(time.September, 30)},
		entity.User{ID: "u4", AccountID: "a4", Name: "Di", Status: entity.UserStatusUser, JoinedAt: day(time.August, 2)},
	)

	trips := newTripStore()
	trips.Seed(
		entity.TripRecord{ID: "t1", UserID: "u1", CreatedAt: day(time.October, 3), TripDetail: `{"name":"Kyoto","travelStyle":"Luxury"}`},
		entity.TripRecord{ID: "t2", UserID: "u1", CreatedAt: day(time.September, 1), TripDetail: `{"name":"Rome","travelStyle":"luxury"}`},
		entity.TripRecord{ID: "t3", UserID: "u3", CreatedAt: day(time.September, 30), TripDetail: `{"name":"Lima","travelStyle":"Luxury"}`},
		entity.TripRecord{ID: "t4", UserID: "u3", CreatedAt: day(time.October, 3), TripDetail: `not json`},
	)
	return users, trips
}

func TestMonthWindows(t *testing.T) {
	startCurrent, startPrev, endPrev := usecase.MonthWindows(time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), startCurrent)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), startPrev)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999999999, time.UTC), endPrev)
}

func TestMonthWindows_January(t *testing.T) {
	_, startPrev, endPrev := usecase.MonthWindows(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), startPrev)
	assert.Equal(t, 31, endPrev.Day())
}

func TestComputeUserAndTripStats(t *testing.T) {
	users, trips := seededStores()

	stats, err := newDashboard(users, trips).ComputeUserAndTripStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, entity.MonthlyCount{CurrentMonth: 2, LastMonth: 1}, stats.UsersJoined)
	assert.Equal(t, entity.RoleCount{Total: 3, CurrentMonth: 1, LastMonth: 1}, stats.UserRole)
	assert.Equal(t, 4, stats.TotalTrips)
	assert.Equal(t, entity.MonthlyCount{CurrentMonth: 2, LastMonth: 2}, stats.TripsCreated)
}

func TestComputeUserAndTripStats_PropagatesStoreErrors(t *testing.T) {
	users, trips := seededStores()
	trips.listErr = errStoreDown

	_, err := newDashboard(users, trips).ComputeUserAndTripStats(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}

func TestComputeGrowthPerDay_KeepsFirstSeenOrder(t *testing.T) {
	dates := []time.Time{
		day(time.October, 3),
		day(time.September, 1),
		{},
		day(time.October, 3),
		day(time.January, 20),
	}

	points := usecase.ComputeGrowthPerDay(dates, func(t time.Time) time.Time { return t })

	assert.Equal(t, []entity.GrowthPoint{
		{Day: "Oct 3", Count: 2},
		{Day: "Sep 1", Count: 1},
		{Day: "Jan 20", Count: 1},
	}, points)
}

func TestComputeGrowthPerDay_Empty(t *testing.T) {
	points := usecase.ComputeGrowthPerDay([]time.Time{}, func(t time.Time) time.Time { return t })
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestTripsPerDay(t *testing.T) {
	users, trips := seededStores()

	points, err := newDashboard(users, trips).TripsPerDay(context.Background())
	require.NoError(t, err)

	total := 0
	for _, p := range points {
		total += p.Count
	}
	assert.Equal(t, 4, total)
	assert.Contains(t, points, entity.GrowthPoint{Day: "Oct 3", Count: 2})
}

func TestComputeTripsByTravelStyle_IsCaseSensitive(t *testing.T) {
	users, trips := seededStores()

	styles, err := newDashboard(users, trips).ComputeTripsByTravelStyle(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []entity.TravelStyleCount{
		{TravelStyle: "Luxury", Count: 2},
		{TravelStyle: "luxury", Count: 1},
	}, styles)
}

func TestGetDashboard(t *testing.T) {
	users, trips := seededStores()

	d, err := newDashboard(users, trips).GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, d.Stats.TotalUsers)
	assert.Len(t, d.RecentTrips, 4)
	assert.Len(t, d.LatestUsers, 4)
	assert.Equal(t, "u2", d.LatestUsers[0].ID)
	assert.Equal(t, entity.Trend{Trend: entity.TrendIncrement, Percentage: 100}, d.Trends.Users)
	assert.Equal(t, entity.TrendNoChange, d.Trends.Trips.Trend)
	assert.NotEmpty(t, d.UserGrowth)
	assert.NotEmpty(t, d.TripsByStyle)

	counts := map[string]int64{}
	for _, u := range d.LatestUsers {
		counts[u.ID] = u.ItineraryCreated
	}
	assert.Equal(t, map[string]int64{"u1": 2, "u2": 0, "u3": 2, "u4": 0}, counts)
}

func TestGetDashboard_RecentTripsFallBack(t *testing.T) {
	users, trips := seededStores()
	trips.pagedErr = errStoreDown

	d, err := newDashboard(users, trips).GetDashboard(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, d.RecentTrips)
	assert.Empty(t, d.RecentTrips)
	assert.Equal(t, 4, d.Stats.TotalTrips)
}

func TestGetDashboard_FailsWhenUsersUnavailable(t *testing.T) {
	users, trips := seededStores()
	users.listErr = errStoreDown

	_, err := newDashboard(users, trips).GetDashboard(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}
