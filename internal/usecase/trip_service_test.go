package usecase_test

import (
	"context"
	"testing"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/usecase"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTripService(store *tripStore) *usecase.TripService {
	log := logger.NewNopLogger()
	return usecase.NewTripService(store, utils.NewTripParser(log), log)
}

func seedTrips(store *tripStore, n int) {
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		store.Seed(entity.TripRecord{
			ID:         string(rune('a' + i)),
			UserID:     "u1",
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			TripDetail: `{"name":"Trip","travelStyle":"Adventure"}`,
		})
	}
}

func TestListTrips(t *testing.T) {
	store := newTripStore()
	seedTrips(store, 5)

	page, err := newTripService(store).ListTrips(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Trips, 2)
	assert.Equal(t, "d", page.Trips[0].ID)
	assert.Equal(t, "c", page.Trips[1].ID)
}

func TestGetTrip_NotFound(t *testing.T) {
	_, err := newTripService(newTripStore()).GetTrip(context.Background(), "missing")

	ue, ok := usecase.AsError(err)
	require.True(t, ok)
	assert.Equal(t, usecase.KindNotFound, ue.Kind)
	assert.Equal(t, 404, ue.HTTPStatus())
}

func TestGetTripDetail(t *testing.T) {
	store := newTripStore()
	seedTrips(store, 8)

	detail, err := newTripService(store).GetTripDetail(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, "b", detail.Trip.ID)
	assert.Equal(t, "Trip", detail.Trip.Name)
	assert.Len(t, detail.RecentTrips, usecase.RecentTripsLimit)
	assert.Equal(t, "h", detail.RecentTrips[0].ID)
}

func TestGetTripDetail_RecentTripsFallBack(t *testing.T) {
	store := newTripStore()
	seedTrips(store, 2)
	store.pagedErr = errStoreDown

	detail, err := newTripService(store).GetTripDetail(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, "a", detail.Trip.ID)
	assert.NotNil(t, detail.RecentTrips)
	assert.Empty(t, detail.RecentTrips)
}

func TestGetTripDetail_TripErrorWins(t *testing.T) {
	store := newTripStore()
	store.findErr = errStoreDown

	_, err := newTripService(store).GetTripDetail(context.Background(), "a")
	assert.ErrorIs(t, err, errStoreDown)
}
