package entity

import "time"

// TripRequest is the set of parameters a user submits to generate an itinerary
type TripRequest struct {
	Country      string `json:"country"`
	NumberOfDays int    `json:"numberOfDays"`
	TravelStyle  string `json:"travelStyle"`
	Interest     string `json:"interest"`
	Budget       string `json:"budget"`
	GroupType    string `json:"groupType"`
	UserID       string `json:"userId"`
}

// Trip duration bounds accepted by the generation form
const (
	MinTripDays = 1
	MaxTripDays = 30
)

// Activity is a single slot of a day plan
type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// DayPlan describes one itinerary day
type DayPlan struct {
	Day        int        `json:"day"`
	Location   string     `json:"location"`
	Activities []Activity `json:"activities"`
}

// TripLocation anchors a trip on the map. Coordinates are [lat, lng].
type TripLocation struct {
	City          string    `json:"city,omitempty"`
	Coordinates   []float64 `json:"coordinates"`
	GoogleMap     string    `json:"googleMap"`
	OpenStreetMap string    `json:"openStreetMap"`
}

// GeneratedTripDetail is the structured itinerary produced by the text model
type GeneratedTripDetail struct {
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	EstimatedPrice  string        `json:"estimatedPrice"`
	Duration        int           `json:"duration"`
	Budget          string        `json:"budget"`
	TravelStyle     string        `json:"travelStyle"`
	Country         string        `json:"country"`
	Interests       string        `json:"interests"`
	GroupType       string        `json:"groupType"`
	BestTimeToVisit []string      `json:"bestTimeToVisit"`
	WeatherInfo     []string      `json:"weatherInfo"`
	Location        *TripLocation `json:"location"`
	Itinerary       []DayPlan     `json:"itinerary"`
}

// TripRecord is the stored form of a generated trip. TripDetail holds the JSON-encoded
// GeneratedTripDetail and is never mutated after creation.
type TripRecord struct {
	ID          string    `json:"id"`
	TripDetail  string    `json:"tripDetail"`
	CreatedAt   time.Time `json:"createdAt"`
	ImageURLs   []string  `json:"imageUrls"`
	UserID      string    `json:"userId"`
	PaymentLink string    `json:"paymentLink,omitempty"`
}

// MaxTripImages caps the images attached to a trip
const MaxTripImages = 3

// Trip is the flattened, fully defaulted view of a TripRecord
type Trip struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	EstimatedPrice  string       `json:"estimatedPrice"`
	Duration        int          `json:"duration"`
	Budget          string       `json:"budget"`
	TravelStyle     string       `json:"travelStyle"`
	Country         string       `json:"country"`
	Interests       string       `json:"interests"`
	GroupType       string       `json:"groupType"`
	BestTimeToVisit []string     `json:"bestTimeToVisit"`
	WeatherInfo     []string     `json:"weatherInfo"`
	Location        TripLocation `json:"location"`
	Itinerary       []DayPlan    `json:"itinerary"`
	ImageURLs       []string     `json:"imageUrls"`
	PaymentLink     string       `json:"payment_link"`
	CreatedAt       time.Time    `json:"createdAt"`
}
