// Package eta converts distances into rider-facing arrival estimates.
package eta

import (
	"fmt"
	"math"
)

// EstimateMinutes converts a distance and an assumed average speed into a
// duration estimate in minutes. The result is floored at 1 so the UI never
// shows a zero or negative ETA.
func EstimateMinutes(distanceKm, speedKmh float64) float64 {
	if speedKmh <= 0 {
		return 1
	}
	minutes := math.Round(distanceKm / speedKmh * 60)
	return math.Max(1, minutes)
}

// ApplyTrafficAdjustment scales an ETA by a traffic multiplier. Multipliers
// below 1.0 are clamped to 1.0 so adjustment can only lengthen an estimate.
func ApplyTrafficAdjustment(etaMinutes, multiplier float64) float64 {
	if multiplier < 1.0 {
		multiplier = 1.0
	}
	return etaMinutes * multiplier
}

// Format renders an ETA as integer-minute display text
func Format(etaMinutes float64) string {
	mins := int(math.Round(etaMinutes))
	if mins < 1 {
		mins = 1
	}
	if mins == 1 {
		return "1 min"
	}
	return fmt.Sprintf("%d mins", mins)
}
