package models

import "time"

// Coordinate represents a geographic point
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is within latitude/longitude bounds
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Location represents the tracked state of a moving entity. It is replaced
// wholesale on every inbound report, never merged field by field.
type Location struct {
	Coordinate
	Heading   float64   `json:"heading"`  // degrees, [0, 360)
	SpeedKmh  float64   `json:"speed"`    // >= 0
	AccuracyM float64   `json:"accuracy"` // >= 0
	Timestamp time.Time `json:"timestamp"`
}

// LocationUpdate represents a driver location event on the realtime channel
type LocationUpdate struct {
	RideID    string    `json:"ride_id"`
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
