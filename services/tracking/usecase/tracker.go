package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/utils"
	"github.com/antarride/tracking/services/tracking"
)

// ShouldShowMap reports whether a live tracking map makes sense for the
// given ride and location: a trackable ride with an assigned driver whose
// position is known.
func ShouldShowMap(ride *models.Ride, location *models.Location) bool {
	return ride != nil &&
		ride.HasDriver() &&
		ride.Status.IsTrackable() &&
		location != nil
}

// RideTracker follows one rider's active ride: it keeps the driver location
// subscription aligned with the ride's status and detects driver arrival at
// the pickup point.
type RideTracker struct {
	realtime tracking.RealtimeGW
	notifier tracking.NotificationGW
	locSub   *LocationSubscription
	cfg      models.TrackingConfig

	mu           sync.Mutex
	riderID      string
	active       *models.Ride
	rideSub      tracking.Subscription
	arrivalFired bool
	onChange     func()
}

// NewRideTracker wires a tracker around an idle location subscription
func NewRideTracker(realtime tracking.RealtimeGW, notifier tracking.NotificationGW, locSub *LocationSubscription, cfg models.TrackingConfig) *RideTracker {
	t := &RideTracker{
		realtime: realtime,
		notifier: notifier,
		locSub:   locSub,
		cfg:      cfg,
	}
	locSub.SetOnLocation(t.handleLocation)
	return t
}

// SetOnChange registers a callback invoked after every state transition.
// Must be called before Start.
func (t *RideTracker) SetOnChange(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// Start installs the rider's resolved ride and begins following the rider's
// lifecycle events. A nil ride leaves the tracker idle until a trackable
// event arrives.
func (t *RideTracker) Start(ctx context.Context, riderID string, ride *models.Ride) error {
	t.mu.Lock()
	t.riderID = riderID
	t.active = ride
	t.arrivalFired = false
	t.mu.Unlock()

	sub, err := t.realtime.SubscribeRideEvents(riderID,
		func(raw []byte) { t.handleRideEvent(raw) },
		func(status models.ChannelStatus) {
			if status == models.ChannelError || status == models.ChannelTimedOut {
				logger.Warn("Ride event channel degraded",
					logger.String("rider_id", riderID),
					logger.String("status", string(status)))
			}
		},
	)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.rideSub = sub
	t.mu.Unlock()

	t.syncSubscription(ctx)
	t.notifyChange()

	return nil
}

// Stop releases the ride event channel and the location subscription
func (t *RideTracker) Stop() {
	t.mu.Lock()
	if t.rideSub != nil {
		if err := t.rideSub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe ride events",
				logger.String("rider_id", t.riderID),
				logger.Err(err))
		}
		t.rideSub = nil
	}
	t.active = nil
	t.mu.Unlock()

	t.locSub.Stop()
}

// ActiveRide returns a copy of the currently tracked ride, or nil
func (t *RideTracker) ActiveRide() *models.Ride {
	return t.copyActiveRide()
}

// OnRideEvent applies a ride lifecycle event to the tracker. Trackable
// statuses install (or replace) the active ride; terminal statuses and
// delete events clear it. The location subscription is re-aligned after
// every transition.
func (t *RideTracker) OnRideEvent(ev models.RideEvent) {
	t.mu.Lock()

	switch ev.Type {
	case models.RideEventDeleted:
		t.active = nil
	case models.RideEventUpdated:
		switch {
		case ev.Ride.Status.IsTrackable():
			if t.active != nil && t.active.RideID != ev.Ride.RideID {
				// Newest trackable ride wins; the previous one is replaced
				logger.Warn("Replacing tracked ride",
					logger.String("previous_ride_id", t.active.RideID.String()),
					logger.String("ride_id", ev.Ride.RideID.String()))
			}
			if t.active == nil || t.active.RideID != ev.Ride.RideID || !sameDriver(t.active, &ev.Ride) {
				t.arrivalFired = false
			}
			ride := ev.Ride
			t.active = &ride
		case ev.Ride.Status.IsTerminal():
			t.active = nil
		default:
			logger.Warn("Ignoring ride event with unknown status",
				logger.String("ride_id", ev.Ride.RideID.String()),
				logger.String("status", string(ev.Ride.Status)))
			t.mu.Unlock()
			return
		}
	default:
		t.mu.Unlock()
		return
	}

	t.mu.Unlock()

	t.syncSubscription(context.Background())
	t.notifyChange()
}

func (t *RideTracker) handleRideEvent(raw []byte) {
	var ev models.RideEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		logger.Warn("Dropped malformed ride event",
			logger.String("rider_id", t.riderID),
			logger.Err(err))
		return
	}
	t.OnRideEvent(ev)
}

// syncSubscription aligns the driver location channel with the current
// ride: subscribed while a trackable ride has an assigned driver, released
// otherwise.
func (t *RideTracker) syncSubscription(ctx context.Context) {
	t.mu.Lock()
	var rideID, driverID string
	if t.active != nil && t.active.HasDriver() && t.active.Status.IsTrackable() {
		rideID = t.active.RideID.String()
		driverID = t.active.DriverID.String()
	}
	t.mu.Unlock()

	if err := t.locSub.Start(ctx, rideID, driverID); err != nil {
		logger.Warn("Failed to start location subscription",
			logger.String("ride_id", rideID),
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
}

// handleLocation checks each accepted location against the pickup point
// while the driver is still en route. The arrival event fires at most once
// per assignment.
func (t *RideTracker) handleLocation(loc models.Location) {
	t.mu.Lock()

	ride := t.active
	if ride == nil || !ride.HasDriver() || t.arrivalFired ||
		(ride.Status != models.RideStatusRequested && ride.Status != models.RideStatusAccepted) {
		t.mu.Unlock()
		t.notifyChange()
		return
	}

	distance := utils.DistanceKm(loc.Coordinate, ride.PickupCoordinate())
	if distance >= t.cfg.ArrivalThresholdKm {
		t.mu.Unlock()
		t.notifyChange()
		return
	}

	t.arrivalFired = true
	event := models.ArrivalEvent{
		RideID:     ride.RideID.String(),
		DriverID:   ride.DriverID.String(),
		RiderID:    ride.RiderID.String(),
		Pickup:     ride.PickupCoordinate(),
		DistanceKm: distance,
		OccurredAt: time.Now(),
	}
	t.mu.Unlock()

	logger.Info("Driver arrived at pickup",
		logger.String("ride_id", event.RideID),
		logger.String("driver_id", event.DriverID),
		logger.Float64("distance_km", event.DistanceKm))

	ctx := context.Background()
	if err := t.notifier.NotifyDriverArrived(ctx, &event); err != nil {
		logger.Error("Failed to publish arrival notification",
			logger.String("ride_id", event.RideID),
			logger.Err(err))
	}
	if err := t.realtime.PublishDriverArrived(ctx, &event); err != nil {
		logger.Error("Failed to broadcast arrival event",
			logger.String("ride_id", event.RideID),
			logger.Err(err))
	}

	t.notifyChange()
}

func (t *RideTracker) copyActiveRide() *models.Ride {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return nil
	}
	ride := *t.active
	return &ride
}

func (t *RideTracker) notifyChange() {
	t.mu.Lock()
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func sameDriver(a, b *models.Ride) bool {
	if a.DriverID == nil || b.DriverID == nil {
		return a.DriverID == b.DriverID
	}
	return *a.DriverID == *b.DriverID
}
