package models

import "time"

// ChannelStatus reports the state of a live subscription channel
type ChannelStatus string

const (
	ChannelSubscribed ChannelStatus = "subscribed"
	ChannelError      ChannelStatus = "channel_error"
	ChannelTimedOut   ChannelStatus = "timed_out"
	ChannelClosed     ChannelStatus = "closed"
)

// TrackingState is the read-only snapshot exposed to consumers. Location is
// a copy; mutating it has no effect on the subscription.
type TrackingState struct {
	Ride          *Ride     `json:"ride,omitempty"`
	Location      *Location `json:"location,omitempty"`
	IsTracking    bool      `json:"is_tracking"`
	LastUpdate    time.Time `json:"last_update"`
	Error         string    `json:"error,omitempty"`
	ShouldShowMap bool      `json:"should_show_map"`
	EtaMinutes    float64   `json:"eta_minutes,omitempty"`
	EtaText       string    `json:"eta_text,omitempty"`
}

// RouteRequest is the payload for a route estimate
type RouteRequest struct {
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
}

// RouteEstimate is the result of a route request. Fallback is set when the
// directions provider could not be used and the estimate is a straight line.
type RouteEstimate struct {
	DistanceKm  float64      `json:"distance_km"`
	DurationMin float64      `json:"duration_min"`
	Path        []Coordinate `json:"path"`
	Fallback    bool         `json:"fallback"`
}

// ArrivalEvent is published when a driver crosses the arrival threshold at
// the pickup point
type ArrivalEvent struct {
	RideID     string     `json:"ride_id"`
	DriverID   string     `json:"driver_id"`
	RiderID    string     `json:"rider_id"`
	Pickup     Coordinate `json:"pickup"`
	DistanceKm float64    `json:"distance_km"`
	OccurredAt time.Time  `json:"occurred_at"`
}
