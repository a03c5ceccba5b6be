package templates

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"tripboard-service/internal/domain/entity"
)

// Bucket sizes the model is asked to fill
const (
	BestTimeToVisitEntries = 4
	WeatherInfoEntries     = 4
)

var tripPromptTemplate = template.Must(template.New("trip").Funcs(template.FuncMap{
	"quote": quote,
}).Parse(`Generate a {{.NumberOfDays}}-day travel itinerary for {{.Country}} based on the following user information:
Budget: '{{.Budget}}'
Interests: '{{.Interest}}'
TravelStyle: '{{.TravelStyle}}'
GroupType: '{{.GroupType}}'
Return the itinerary and lowest estimated price as JSON inside a single ` + "```json" + ` fenced block with the following structure:
{
"name": "A descriptive title for the trip",
"description": "A brief description of the trip and its highlights not exceeding 100 words",
"estimatedPrice": "Lowest average price for the trip in USD, e.g.$price",
"duration": {{.NumberOfDays}},
"budget": {{quote .Budget}},
"travelStyle": {{quote .TravelStyle}},
"country": {{quote .Country}},
"interests": {{quote .Interest}},
"groupType": {{quote .GroupType}},
"bestTimeToVisit": [
  "🌸 Season (from month to month): reason to visit",
  "☀️ Season (from month to month): reason to visit",
  "🍁 Season (from month to month): reason to visit",
  "❄️ Season (from month to month): reason to visit"
],
"weatherInfo": [
  "☀️ Season: temperature range in Celsius (temperature range in Fahrenheit)",
  "🌦️ Season: temperature range in Celsius (temperature range in Fahrenheit)",
  "🌧️ Season: temperature range in Celsius (temperature range in Fahrenheit)",
  "❄️ Season: temperature range in Celsius (temperature range in Fahrenheit)"
],
"location": {
  "city": "name of the city or region",
  "coordinates": [latitude, longitude],
  "openStreetMap": "link to open street map"
},
"itinerary": [
{
  "day": 1,
  "location": "City/Region Name",
  "activities": [
    {"time": "Morning", "description": "🏰 Visit the local historic castle and enjoy a scenic walk"},
    {"time": "Afternoon", "description": "🖼️ Explore a famous art museum with a guided tour"},
    {"time": "Evening", "description": "🍷 Dine at a rooftop restaurant with local wine"}
  ]
},
...
]
}
"bestTimeToVisit" and "weatherInfo" must contain exactly {{.BestTimeEntries}} and {{.WeatherEntries}} entries.
"itinerary" must contain exactly one entry per day, numbered 1 to {{.NumberOfDays}}.`))

type promptData struct {
	entity.TripRequest
	BestTimeEntries int
	WeatherEntries  int
}

// TripPrompt renders the itinerary prompt for a request
func TripPrompt(req *entity.TripRequest) (string, error) {
	var sb strings.Builder
	err := tripPromptTemplate.Execute(&sb, promptData{
		TripRequest:     *req,
		BestTimeEntries: BestTimeToVisitEntries,
		WeatherEntries:  WeatherInfoEntries,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render trip prompt: %w", err)
	}
	return sb.String(), nil
}

// quote renders s as a JSON string literal
func quote(s string) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(sb.String(), "\n")
}
