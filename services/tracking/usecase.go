package tracking

import (
	"context"

	"github.com/antarride/tracking/internal/pkg/models"
)

// TrackingUC defines the tracking business logic exposed to handlers
type TrackingUC interface {
	// StartForRider resolves the rider's active ride and begins live
	// tracking. Returns the resolved ride, or nil when the rider has no
	// trackable ride.
	StartForRider(ctx context.Context, riderID string) (*models.Ride, error)

	// Stop ends tracking for a ride and releases its subscriptions
	Stop(ctx context.Context, rideID string) error

	// ResolveActiveRide returns the rider's current active ride without
	// starting tracking.
	ResolveActiveRide(ctx context.Context, riderID string) (*models.Ride, error)

	// Snapshot returns the current tracking state for a ride
	Snapshot(rideID string) (models.TrackingState, bool)

	// Watch registers a watcher notified with a state snapshot on every
	// change. The returned function cancels the watch.
	Watch(rideID string, fn func(models.TrackingState)) (cancel func(), ok bool)

	// EstimateRoute returns a route between two points, falling back to a
	// straight-line estimate when the directions provider is unavailable.
	EstimateRoute(ctx context.Context, origin, destination models.Coordinate) (*models.RouteEstimate, error)

	// IngestDriverLocation persists a driver location report and publishes
	// it on the realtime channel.
	IngestDriverLocation(ctx context.Context, rideID, driverID string, location *models.Location) error
}
