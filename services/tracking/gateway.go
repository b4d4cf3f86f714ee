package tracking

import (
	"context"

	"github.com/antarride/tracking/internal/pkg/models"
)

// Subscription is a handle on a live realtime channel
type Subscription interface {
	// Unsubscribe synchronously releases the channel. Safe to call more
	// than once.
	Unsubscribe() error
}

// RealtimeGW defines the live subscription transport (NATS)
type RealtimeGW interface {
	// SubscribeDriverLocation opens a live channel of location events for
	// one (ride, driver) pair. onStatus reports channel lifecycle changes.
	SubscribeDriverLocation(rideID, driverID string, onEvent func([]byte), onStatus func(models.ChannelStatus)) (Subscription, error)

	// SubscribeRideEvents opens a live channel of ride-record change events
	// for a rider.
	SubscribeRideEvents(riderID string, onEvent func([]byte), onStatus func(models.ChannelStatus)) (Subscription, error)

	// PublishDriverLocation publishes a driver location event
	PublishDriverLocation(ctx context.Context, update *models.LocationUpdate) error

	// PublishDriverArrived publishes an arrival event on the ride event bus
	PublishDriverArrived(ctx context.Context, event *models.ArrivalEvent) error
}

// NotificationGW fans out user-facing notifications (NSQ)
type NotificationGW interface {
	NotifyDriverArrived(ctx context.Context, event *models.ArrivalEvent) error
}

// DirectionsGW requests routes from the external directions provider
type DirectionsGW interface {
	// GetRoute returns the driving route between two points. Implementations
	// return an error on provider failure; callers fall back to a straight
	// line estimate.
	GetRoute(ctx context.Context, origin, destination models.Coordinate) (*models.RouteEstimate, error)
}
