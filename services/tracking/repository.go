package tracking

import (
	"context"

	"github.com/antarride/tracking/internal/pkg/models"
)

// LocationRepo defines last-known-location access backed by Redis
type LocationRepo interface {
	// StoreDriverLocation stores the latest location for a driver and
	// refreshes the geo index.
	StoreDriverLocation(ctx context.Context, driverID string, location *models.Location) error

	// GetLastLocation returns the last stored location for a driver, or nil
	// when none is known.
	GetLastLocation(ctx context.Context, driverID string) (*models.Location, error)
}

// RideRepo defines ride record access backed by Postgres
type RideRepo interface {
	// GetActiveRideByRider returns the most recently created ride in a
	// trackable status for the rider, or nil when none match.
	GetActiveRideByRider(ctx context.Context, riderID string) (*models.Ride, error)

	// GetRide returns a ride by id, or nil when it does not exist.
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
}
