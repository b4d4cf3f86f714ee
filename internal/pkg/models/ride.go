package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusRequested     RideStatus = "requested"
	RideStatusAccepted      RideStatus = "accepted"
	RideStatusDriverArrived RideStatus = "driver_arrived"
	RideStatusInProgress    RideStatus = "in_progress"
	RideStatusPickedUp      RideStatus = "picked_up"
	RideStatusCompleted     RideStatus = "completed"
	RideStatusCancelled     RideStatus = "cancelled"
)

// TrackableStatuses are the ride states during which live map tracking is
// meaningful. Order matches lifecycle progression.
var TrackableStatuses = []RideStatus{
	RideStatusRequested,
	RideStatusAccepted,
	RideStatusDriverArrived,
	RideStatusInProgress,
	RideStatusPickedUp,
}

// IsTrackable reports whether the status is in the trackable set
func (s RideStatus) IsTrackable() bool {
	for _, t := range TrackableStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends tracking
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Ride represents a ride record
type Ride struct {
	RideID             uuid.UUID  `json:"ride_id" db:"ride_id"`
	RiderID            uuid.UUID  `json:"rider_id" db:"rider_id"`
	DriverID           *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	Status             RideStatus `json:"status" db:"status"`
	PickupLatitude     float64    `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude    float64    `json:"pickup_longitude" db:"pickup_longitude"`
	PickupAddress      string     `json:"pickup_address" db:"pickup_address"`
	DestLatitude       *float64   `json:"destination_latitude,omitempty" db:"destination_latitude"`
	DestLongitude      *float64   `json:"destination_longitude,omitempty" db:"destination_longitude"`
	DestinationAddress string     `json:"destination_address" db:"destination_address"`
	FareAmount         int        `json:"fare_amount" db:"fare_amount"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// PickupCoordinate returns the pickup point
func (r *Ride) PickupCoordinate() Coordinate {
	return Coordinate{Latitude: r.PickupLatitude, Longitude: r.PickupLongitude}
}

// DestinationCoordinate returns the destination point, or nil when the rider
// has not set one
func (r *Ride) DestinationCoordinate() *Coordinate {
	if r.DestLatitude == nil || r.DestLongitude == nil {
		return nil
	}
	return &Coordinate{Latitude: *r.DestLatitude, Longitude: *r.DestLongitude}
}

// HasDriver reports whether a driver has been assigned
func (r *Ride) HasDriver() bool {
	return r.DriverID != nil && *r.DriverID != uuid.Nil
}

// RideEventType distinguishes ride-change events on the realtime channel
type RideEventType string

const (
	RideEventUpdated RideEventType = "updated"
	RideEventDeleted RideEventType = "deleted"
)

// RideEvent represents a ride-record change event
type RideEvent struct {
	Type RideEventType `json:"type"`
	Ride Ride          `json:"ride"`
}
