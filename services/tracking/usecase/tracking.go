package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/antarride/tracking/internal/pkg/eta"
	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/utils"
	"github.com/antarride/tracking/services/tracking"
)

// session bundles the per-ride tracking machinery
type session struct {
	rideID  string
	riderID string
	tracker *RideTracker
	locSub  *LocationSubscription
}

// TrackingUsecase implements tracking.TrackingUC. It owns one tracking
// session per ride and fans state changes out to registered watchers.
type TrackingUsecase struct {
	cfg       *models.Config
	locations tracking.LocationRepo
	rides     tracking.RideRepo
	realtime  tracking.RealtimeGW
	notifier  tracking.NotificationGW
	estimator *RouteEstimator

	mu          sync.Mutex
	sessions    map[string]*session
	watchers    map[string]map[int]func(models.TrackingState)
	nextWatcher int
}

// NewTrackingUC creates the tracking usecase. directions may be nil when no
// provider is configured.
func NewTrackingUC(
	cfg *models.Config,
	locations tracking.LocationRepo,
	rides tracking.RideRepo,
	realtime tracking.RealtimeGW,
	notifier tracking.NotificationGW,
	directions tracking.DirectionsGW,
) tracking.TrackingUC {
	return &TrackingUsecase{
		cfg:       cfg,
		locations: locations,
		rides:     rides,
		realtime:  realtime,
		notifier:  notifier,
		estimator: NewRouteEstimator(directions, cfg.Tracking),
		sessions:  make(map[string]*session),
		watchers:  make(map[string]map[int]func(models.TrackingState)),
	}
}

// StartForRider resolves the rider's active ride and starts a tracking
// session for it. Starting a ride that is already tracked returns the
// existing session's ride.
func (uc *TrackingUsecase) StartForRider(ctx context.Context, riderID string) (*models.Ride, error) {
	if riderID == "" {
		return nil, fmt.Errorf("rider id is required")
	}

	ride, err := uc.rides.GetActiveRideByRider(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, nil
	}

	rideID := ride.RideID.String()

	// The registry slot is claimed before any channel opens, so a duplicate
	// start never holds a second live subscription for the same pair.
	uc.mu.Lock()
	if existing, ok := uc.sessions[rideID]; ok {
		uc.mu.Unlock()
		if current := existing.tracker.ActiveRide(); current != nil {
			return current, nil
		}
		return ride, nil
	}
	locSub := NewLocationSubscription(uc.locations, uc.realtime)
	tracker := NewRideTracker(uc.realtime, uc.notifier, locSub, uc.cfg.Tracking)
	uc.sessions[rideID] = &session{
		rideID:  rideID,
		riderID: riderID,
		tracker: tracker,
		locSub:  locSub,
	}
	uc.mu.Unlock()

	if err := tracker.Start(ctx, riderID, ride); err != nil {
		uc.mu.Lock()
		delete(uc.sessions, rideID)
		uc.mu.Unlock()
		tracker.Stop()
		return nil, err
	}

	tracker.SetOnChange(func() { uc.broadcast(rideID) })

	logger.Info("Started tracking session",
		logger.String("ride_id", rideID),
		logger.String("rider_id", riderID))

	uc.broadcast(rideID)
	return ride, nil
}

// Stop ends the tracking session for a ride
func (uc *TrackingUsecase) Stop(ctx context.Context, rideID string) error {
	uc.mu.Lock()
	sess, ok := uc.sessions[rideID]
	if ok {
		delete(uc.sessions, rideID)
	}
	uc.mu.Unlock()

	if !ok {
		return fmt.Errorf("no tracking session for ride %s", rideID)
	}

	sess.tracker.Stop()

	logger.Info("Stopped tracking session", logger.String("ride_id", rideID))

	uc.notifyWatchers(rideID, models.TrackingState{IsTracking: false})
	return nil
}

// ResolveActiveRide returns the rider's current trackable ride without
// starting a session
func (uc *TrackingUsecase) ResolveActiveRide(ctx context.Context, riderID string) (*models.Ride, error) {
	return uc.rides.GetActiveRideByRider(ctx, riderID)
}

// Snapshot composes the current tracking state for a ride
func (uc *TrackingUsecase) Snapshot(rideID string) (models.TrackingState, bool) {
	uc.mu.Lock()
	sess, ok := uc.sessions[rideID]
	uc.mu.Unlock()

	if !ok {
		return models.TrackingState{}, false
	}
	return uc.composeState(sess), true
}

// Watch registers a watcher for a ride's state changes
func (uc *TrackingUsecase) Watch(rideID string, fn func(models.TrackingState)) (func(), bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[rideID]; !ok {
		return nil, false
	}

	uc.nextWatcher++
	id := uc.nextWatcher
	if uc.watchers[rideID] == nil {
		uc.watchers[rideID] = make(map[int]func(models.TrackingState))
	}
	uc.watchers[rideID][id] = fn

	cancel := func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if ws, ok := uc.watchers[rideID]; ok {
			delete(ws, id)
			if len(ws) == 0 {
				delete(uc.watchers, rideID)
			}
		}
	}
	return cancel, true
}

// EstimateRoute delegates to the route estimator
func (uc *TrackingUsecase) EstimateRoute(ctx context.Context, origin, destination models.Coordinate) (*models.RouteEstimate, error) {
	return uc.estimator.EstimateRoute(ctx, origin, destination)
}

// IngestDriverLocation validates and persists a driver location report,
// then publishes it for live subscribers. A zero timestamp is stamped with
// the current time.
func (uc *TrackingUsecase) IngestDriverLocation(ctx context.Context, rideID, driverID string, location *models.Location) error {
	if driverID == "" {
		return fmt.Errorf("driver id is required")
	}
	if location == nil || !location.Coordinate.Valid() {
		return fmt.Errorf("invalid location coordinates")
	}
	if location.Timestamp.IsZero() {
		location.Timestamp = time.Now()
	}
	location.Heading = utils.NormalizeBearing(location.Heading)

	if err := uc.locations.StoreDriverLocation(ctx, driverID, location); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}

	if rideID == "" {
		return nil
	}

	update := &models.LocationUpdate{
		RideID:    rideID,
		DriverID:  driverID,
		Location:  *location,
		CreatedAt: time.Now(),
	}
	if err := uc.realtime.PublishDriverLocation(ctx, update); err != nil {
		// Storage succeeded; live subscribers recover from the point read
		logger.Warn("Failed to publish driver location",
			logger.String("ride_id", rideID),
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
	return nil
}

// composeState builds the watcher-facing state from the session's tracker
// and subscription
func (uc *TrackingUsecase) composeState(sess *session) models.TrackingState {
	ride := sess.tracker.ActiveRide()
	snap := sess.locSub.Snapshot()

	state := models.TrackingState{
		Ride:          ride,
		Location:      snap.Location,
		IsTracking:    snap.IsTracking,
		LastUpdate:    snap.LastUpdate,
		Error:         snap.Error,
		ShouldShowMap: ShouldShowMap(ride, snap.Location),
	}

	if ride != nil && snap.Location != nil {
		if target := etaTarget(ride); target != nil {
			distance := utils.DistanceKm(snap.Location.Coordinate, *target)
			minutes := eta.EstimateMinutes(distance, uc.cfg.Tracking.AssumedSpeedKmh)
			minutes = eta.ApplyTrafficAdjustment(minutes, uc.cfg.Tracking.TrafficMultiplier)
			state.EtaMinutes = minutes
			state.EtaText = eta.Format(minutes)
		}
	}
	return state
}

// etaTarget picks the point the ETA counts down to: the pickup while the
// driver is en route, the destination once the ride is underway.
func etaTarget(ride *models.Ride) *models.Coordinate {
	switch ride.Status {
	case models.RideStatusRequested, models.RideStatusAccepted, models.RideStatusDriverArrived:
		pickup := ride.PickupCoordinate()
		return &pickup
	default:
		return ride.DestinationCoordinate()
	}
}

func (uc *TrackingUsecase) broadcast(rideID string) {
	uc.mu.Lock()
	sess, ok := uc.sessions[rideID]
	uc.mu.Unlock()
	if !ok {
		return
	}
	uc.notifyWatchers(rideID, uc.composeState(sess))
}

func (uc *TrackingUsecase) notifyWatchers(rideID string, state models.TrackingState) {
	uc.mu.Lock()
	fns := make([]func(models.TrackingState), 0, len(uc.watchers[rideID]))
	for _, fn := range uc.watchers[rideID] {
		fns = append(fns, fn)
	}
	uc.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
