package templates_test

import (
	"strings"
	"testing"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripPrompt(t *testing.T) {
	prompt, err := templates.TripPrompt(&entity.TripRequest{
		Country:      "Japan",
		NumberOfDays: 5,
		TravelStyle:  "Luxury",
		Interest:     `Food "street" stalls`,
		Budget:       "Premium",
		GroupType:    "Couple",
		UserID:       "u1",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "Generate a 5-day travel itinerary for Japan"))
	assert.Contains(t, prompt, `"duration": 5,`)
	assert.Contains(t, prompt, `"interests": "Food \"street\" stalls",`)
	assert.Contains(t, prompt, `"travelStyle": "Luxury",`)
	assert.Contains(t, prompt, "```json")
	assert.Contains(t, prompt, "exactly 4 and 4 entries")
	assert.Contains(t, prompt, "numbered 1 to 5")
	assert.NotContains(t, prompt, "u1")
}
