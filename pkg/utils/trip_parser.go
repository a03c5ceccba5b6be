package utils

import (
	"encoding/json"
	"errors"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/pkg/logger"
)

// Defaults applied when a stored trip detail lacks a field
const (
	DefaultTripName       = "Untitled Trip"
	DefaultEstimatedPrice = "Price not available"
)

var errNotObject = errors.New("trip detail is not a JSON object")

// TripParser decodes stored trip details into display-ready trips
type TripParser struct {
	logger logger.Logger
	now    func() time.Time
}

// NewTripParser creates a new trip parser
func NewTripParser(logger logger.Logger) *TripParser {
	return &TripParser{
		logger: logger,
		now:    time.Now,
	}
}

// ParseTripDetail decodes raw into a detail, or returns nil when raw is not a JSON object.
// Fields holding a value of the wrong type are left at their zero value.
func (p *TripParser) ParseTripDetail(raw string) *entity.GeneratedTripDetail {
	detail, err := decodeTripDetail(raw)
	if err != nil {
		p.logger.Warn("Error parsing trip details", "error", err)
		return nil
	}
	return detail
}

// TransformTripRecord flattens a record into a Trip with every field populated.
func (p *TripParser) TransformTripRecord(record *entity.TripRecord) entity.Trip {
	detail := &entity.GeneratedTripDetail{}
	if record.TripDetail != "" {
		if parsed := p.ParseTripDetail(record.TripDetail); parsed != nil {
			detail = parsed
		}
	}

	trip := entity.Trip{
		ID:              record.ID,
		Name:            orDefault(detail.Name, DefaultTripName),
		Description:     detail.Description,
		EstimatedPrice:  orDefault(detail.EstimatedPrice, DefaultEstimatedPrice),
		Duration:        detail.Duration,
		Budget:          detail.Budget,
		TravelStyle:     detail.TravelStyle,
		Country:         detail.Country,
		Interests:       detail.Interests,
		GroupType:       detail.GroupType,
		BestTimeToVisit: nonNil(detail.BestTimeToVisit),
		WeatherInfo:     nonNil(detail.WeatherInfo),
		Location:        defaultLocation(detail.Location),
		Itinerary:       defaultItinerary(detail.Itinerary),
		ImageURLs:       nonNil(record.ImageURLs),
		PaymentLink:     record.PaymentLink,
		CreatedAt:       record.CreatedAt,
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = p.now().UTC()
	}
	return trip
}

// TransformTripRecords drops invalid records and transforms the rest, keeping order
func (p *TripParser) TransformTripRecords(records []*entity.TripRecord) []entity.Trip {
	trips := make([]entity.Trip, 0, len(records))
	for _, record := range records {
		if !IsValidTripRecord(record) {
			continue
		}
		trips = append(trips, p.TransformTripRecord(record))
	}
	return trips
}

// IsValidTripRecord reports whether a record has both an id and a trip detail
func IsValidTripRecord(record *entity.TripRecord) bool {
	return record != nil && record.ID != "" && record.TripDetail != ""
}

func decodeTripDetail(raw string) (*entity.GeneratedTripDetail, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotObject
	}

	detail := &entity.GeneratedTripDetail{}
	targets := map[string]interface{}{
		"name":            &detail.Name,
		"description":     &detail.Description,
		"estimatedPrice":  &detail.EstimatedPrice,
		"duration":        &detail.Duration,
		"budget":          &detail.Budget,
		"travelStyle":     &detail.TravelStyle,
		"country":         &detail.Country,
		"interests":       &detail.Interests,
		"groupType":       &detail.GroupType,
		"bestTimeToVisit": &detail.BestTimeToVisit,
		"weatherInfo":     &detail.WeatherInfo,
		"location":        &detail.Location,
		"itinerary":       &detail.Itinerary,
	}
	for key, target := range targets {
		value, ok := fields[key]
		if !ok {
			continue
		}
		// a mistyped field keeps its zero value instead of discarding the detail
		_ = json.Unmarshal(value, target)
	}
	return detail, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}

func defaultLocation(loc *entity.TripLocation) entity.TripLocation {
	if loc == nil {
		return entity.TripLocation{Coordinates: []float64{0, 0}}
	}
	out := *loc
	if len(out.Coordinates) == 0 {
		out.Coordinates = []float64{0, 0}
	}
	return out
}

func defaultItinerary(days []entity.DayPlan) []entity.DayPlan {
	out := make([]entity.DayPlan, len(days))
	for i, day := range days {
		day.Activities = nonNil(day.Activities)
		out[i] = day
	}
	return out
}
