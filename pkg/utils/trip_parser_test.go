package utils_test

import (
	"testing"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kyotoDetail = `{
	"name": "Kyoto Escape",
	"description": "Temples and tea",
	"estimatedPrice": "$1,200",
	"duration": 2,
	"budget": "Mid-range",
	"travelStyle": "Relaxed",
	"country": "Japan",
	"interests": "Culture",
	"groupType": "Couple",
	"bestTimeToVisit": ["a", "b", "c", "d"],
	"weatherInfo": ["w", "x", "y", "z"],
	"location": {"city": "Kyoto", "coordinates": [35.0, 135.7], "openStreetMap": "https://osm.org/kyoto"},
	"itinerary": [
		{"day": 1, "location": "Gion", "activities": [{"time": "Morning", "description": "Walk"}]},
		{"day": 2, "location": "Arashiyama"}
	]
}`

func newParser() *utils.TripParser {
	return utils.NewTripParser(logger.NewNopLogger())
}

func TestParseTripDetail(t *testing.T) {
	detail := newParser().ParseTripDetail(kyotoDetail)

	require.NotNil(t, detail)
	assert.Equal(t, "Kyoto Escape", detail.Name)
	assert.Equal(t, 2, detail.Duration)
	assert.Equal(t, "Relaxed", detail.TravelStyle)
	require.NotNil(t, detail.Location)
	assert.Equal(t, []float64{35.0, 135.7}, detail.Location.Coordinates)
	assert.Len(t, detail.Itinerary, 2)
}

func TestParseTripDetail_ReturnsNilOnMalformedInput(t *testing.T) {
	p := newParser()
	for _, raw := range []string{"", "not json", "{", "null", "[1,2]", `"text"`} {
		assert.Nil(t, p.ParseTripDetail(raw), "input %q", raw)
	}
}

func TestParseTripDetail_KeepsWellTypedFields(t *testing.T) {
	detail := newParser().ParseTripDetail(`{"name":"Oslo","duration":"five days","travelStyle":"Adventure"}`)

	require.NotNil(t, detail)
	assert.Equal(t, "Oslo", detail.Name)
	assert.Equal(t, 0, detail.Duration)
	assert.Equal(t, "Adventure", detail.TravelStyle)
}

func TestTransformTripRecord(t *testing.T) {
	created := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	record := &entity.TripRecord{
		ID:          "trip-1",
		TripDetail:  kyotoDetail,
		CreatedAt:   created,
		ImageURLs:   []string{"https://img/1"},
		UserID:      "user-1",
		PaymentLink: "https://pay/1",
	}

	trip := newParser().TransformTripRecord(record)

	assert.Equal(t, "trip-1", trip.ID)
	assert.Equal(t, "Kyoto Escape", trip.Name)
	assert.Equal(t, "$1,200", trip.EstimatedPrice)
	assert.Equal(t, "Kyoto", trip.Location.City)
	assert.Equal(t, []string{"https://img/1"}, trip.ImageURLs)
	assert.Equal(t, "https://pay/1", trip.PaymentLink)
	assert.Equal(t, created, trip.CreatedAt)
	require.Len(t, trip.Itinerary, 2)
	assert.NotNil(t, trip.Itinerary[1].Activities)
}

func TestTransformTripRecord_IsTotal(t *testing.T) {
	p := newParser()
	for _, raw := range []string{"", "{", "null", "[]", "{}", `{"name":""}`, `{"location":{"city":"X"}}`} {
		t.Run(raw, func(t *testing.T) {
			var trip entity.Trip
			require.NotPanics(t, func() {
				trip = p.TransformTripRecord(&entity.TripRecord{ID: "x", TripDetail: raw})
			})

			assert.Equal(t, utils.DefaultTripName, trip.Name)
			assert.Equal(t, utils.DefaultEstimatedPrice, trip.EstimatedPrice)
			assert.NotNil(t, trip.BestTimeToVisit)
			assert.NotNil(t, trip.WeatherInfo)
			assert.NotNil(t, trip.Itinerary)
			assert.NotNil(t, trip.ImageURLs)
			assert.Equal(t, []float64{0, 0}, trip.Location.Coordinates)
			assert.False(t, trip.CreatedAt.IsZero())
		})
	}
}

func TestTransformTripRecord_DefaultLocation(t *testing.T) {
	trip := newParser().TransformTripRecord(&entity.TripRecord{ID: "x", TripDetail: "{}"})

	assert.Equal(t, entity.TripLocation{Coordinates: []float64{0, 0}}, trip.Location)
	assert.Empty(t, trip.Location.GoogleMap)
	assert.Empty(t, trip.Location.OpenStreetMap)
}

func TestIsValidTripRecord(t *testing.T) {
	assert.True(t, utils.IsValidTripRecord(&entity.TripRecord{ID: "a", TripDetail: "{}"}))
	assert.False(t, utils.IsValidTripRecord(&entity.TripRecord{ID: "", TripDetail: "{}"}))
	assert.False(t, utils.IsValidTripRecord(&entity.TripRecord{ID: "a", TripDetail: ""}))
	assert.False(t, utils.IsValidTripRecord(nil))
}

func TestTransformTripRecords_DropsCorruptRecords(t *testing.T) {
	records := []*entity.TripRecord{
		{ID: "", TripDetail: kyotoDetail},
		{ID: "good", TripDetail: kyotoDetail},
		{ID: "empty", TripDetail: ""},
	}

	trips := newParser().TransformTripRecords(records)

	require.Len(t, trips, 1)
	assert.Equal(t, "good", trips[0].ID)
}
