package utils

import (
	"math"

	"tripboard-service/internal/domain/entity"
)

// CalculateTrendPercentage compares a current count against the previous one.
// A previous count of zero reports 100% growth unless the current count is zero too.
func CalculateTrendPercentage(current, last int) entity.Trend {
	if last == 0 {
		if current == 0 {
			return entity.Trend{Trend: entity.TrendNoChange, Percentage: 0}
		}
		return entity.Trend{Trend: entity.TrendIncrement, Percentage: 100}
	}

	change := current - last
	percentage := math.Abs(float64(change)) / float64(last) * 100

	switch {
	case change > 0:
		return entity.Trend{Trend: entity.TrendIncrement, Percentage: percentage}
	case change < 0:
		return entity.Trend{Trend: entity.TrendDecrement, Percentage: percentage}
	default:
		return entity.Trend{Trend: entity.TrendNoChange, Percentage: 0}
	}
}
