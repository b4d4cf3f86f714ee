package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/utils"
	"github.com/antarride/tracking/services/tracking"
)

// SubscriptionState is the lifecycle state of a LocationSubscription
type SubscriptionState string

const (
	StateIdle       SubscriptionState = "idle"
	StateConnecting SubscriptionState = "connecting"
	StateSubscribed SubscriptionState = "subscribed"
	StateError      SubscriptionState = "error"
	StateClosed     SubscriptionState = "closed"
)

// String implements fmt.Stringer
func (s SubscriptionState) String() string { return string(s) }

// LocationSnapshot is the read-only view of a subscription's state. The
// Location is a copy owned by the caller.
type LocationSnapshot struct {
	Location   *models.Location
	State      SubscriptionState
	IsTracking bool
	LastUpdate time.Time
	Error      string
}

// LocationSubscription maintains the latest known location for a single
// driver over a live realtime channel. At most one live channel exists per
// (ride, driver) pair: starting a new session always tears the previous one
// down first.
//
// Channel failures are recorded on the snapshot rather than returned as
// errors; there is no automatic retry. The surrounding tracker restarts the
// subscription on ride-status changes.
type LocationSubscription struct {
	repo     tracking.LocationRepo
	realtime tracking.RealtimeGW

	mu         sync.Mutex
	gen        uint64 // invalidates callbacks from torn-down sessions
	state      SubscriptionState
	rideID     string
	driverID   string
	sub        tracking.Subscription
	location   *models.Location
	lastUpdate time.Time
	errMsg     string
	isTracking bool
	dropped    int
	onLocation func(models.Location)
}

// NewLocationSubscription creates an idle subscription
func NewLocationSubscription(repo tracking.LocationRepo, realtime tracking.RealtimeGW) *LocationSubscription {
	return &LocationSubscription{
		repo:     repo,
		realtime: realtime,
		state:    StateIdle,
	}
}

// SetOnLocation registers a callback invoked with a copy of every accepted
// location update. Must be called before Start.
func (s *LocationSubscription) SetOnLocation(fn func(models.Location)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLocation = fn
}

// Start begins tracking the given (ride, driver) pair. It is idempotent:
// re-starting an already connecting or subscribed session with the same
// identifiers is a no-op. Empty identifiers release the current channel and
// move the session to idle.
func (s *LocationSubscription) Start(ctx context.Context, rideID, driverID string) error {
	s.mu.Lock()

	if rideID == "" || driverID == "" {
		old := s.detachLocked()
		s.state = StateIdle
		s.mu.Unlock()
		s.release(old)
		return nil
	}

	if s.rideID == rideID && s.driverID == driverID &&
		(s.state == StateConnecting || s.state == StateSubscribed) {
		s.mu.Unlock()
		return nil
	}

	old := s.detachLocked()
	s.rideID = rideID
	s.driverID = driverID
	s.state = StateConnecting
	gen := s.gen
	s.mu.Unlock()

	// The previous channel is released before the new one opens so that at
	// most one live subscription exists at any instant.
	s.release(old)

	// Fetch the last known location concurrently with the live subscribe so
	// the map is not blank while the first event is in flight.
	go s.fetchInitial(ctx, gen, driverID)

	sub, err := s.realtime.SubscribeDriverLocation(rideID, driverID,
		func(raw []byte) { s.handleUpdate(gen, raw) },
		func(status models.ChannelStatus) { s.handleStatus(gen, status) },
	)

	s.mu.Lock()
	if gen != s.gen {
		// Stopped or restarted while the subscribe was in flight
		s.mu.Unlock()
		if err == nil && sub != nil {
			s.release(sub)
		}
		return nil
	}

	if err != nil {
		s.state = StateError
		s.isTracking = false
		s.errMsg = fmt.Sprintf("subscribe failed: %v", err)
		s.mu.Unlock()
		return err
	}

	s.sub = sub
	s.mu.Unlock()
	return nil
}

// Stop synchronously releases the live channel. Safe to call repeatedly and
// on an idle session.
func (s *LocationSubscription) Stop() {
	s.mu.Lock()
	old := s.detachLocked()
	s.state = StateClosed
	s.mu.Unlock()
	s.release(old)
}

// Snapshot returns a copy of the current subscription state
func (s *LocationSubscription) Snapshot() LocationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := LocationSnapshot{
		State:      s.state,
		IsTracking: s.isTracking,
		LastUpdate: s.lastUpdate,
		Error:      s.errMsg,
	}
	if s.location != nil {
		loc := *s.location
		snap.Location = &loc
	}
	return snap
}

// DroppedUpdates returns the number of malformed updates discarded
func (s *LocationSubscription) DroppedUpdates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// detachLocked clears the session and hands back the channel handle.
// Bumping gen invalidates any in-flight callback from the old session.
// The handle must be released with release after the mutex is dropped:
// unsubscribing emits a closed status, and that callback takes the mutex.
func (s *LocationSubscription) detachLocked() tracking.Subscription {
	s.gen++
	sub := s.sub
	s.sub = nil
	s.location = nil
	s.isTracking = false
	s.errMsg = ""
	return sub
}

func (s *LocationSubscription) release(sub tracking.Subscription) {
	if sub == nil {
		return
	}
	if err := sub.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe location channel", logger.Err(err))
	}
}

func (s *LocationSubscription) fetchInitial(ctx context.Context, gen uint64, driverID string) {
	loc, err := s.repo.GetLastLocation(ctx, driverID)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}

	if err != nil {
		// Non-fatal: the live channel is still being attempted
		s.errMsg = fmt.Sprintf("last known location unavailable: %v", err)
		s.mu.Unlock()
		return
	}

	var notify func(models.Location)
	var copied models.Location
	if loc != nil && s.location == nil {
		s.location = loc
		s.lastUpdate = time.Now()
		copied = *loc
		notify = s.onLocation
	}
	s.mu.Unlock()

	if notify != nil {
		notify(copied)
	}
}

func (s *LocationSubscription) handleStatus(gen uint64, status models.ChannelStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}

	switch status {
	case models.ChannelSubscribed:
		s.state = StateSubscribed
		s.isTracking = true
		s.errMsg = ""
	case models.ChannelError:
		s.state = StateError
		s.isTracking = false
		s.errMsg = "location channel error"
	case models.ChannelTimedOut:
		s.state = StateError
		s.isTracking = false
		s.errMsg = "location channel timed out"
	case models.ChannelClosed:
		if s.state != StateClosed && s.state != StateIdle {
			s.isTracking = false
		}
	}
}

func (s *LocationSubscription) handleUpdate(gen uint64, raw []byte) {
	s.mu.Lock()

	if gen != s.gen {
		s.mu.Unlock()
		return
	}

	loc, err := parseLocation(raw, s.location)
	if err != nil {
		// Coordinates are required; the previous location is retained
		s.dropped++
		s.mu.Unlock()
		logger.Warn("Dropped malformed location update",
			logger.String("ride_id", s.rideID),
			logger.String("driver_id", s.driverID),
			logger.Err(err))
		return
	}

	s.location = loc
	s.lastUpdate = time.Now()

	notify := s.onLocation
	copied := *loc
	s.mu.Unlock()

	if notify != nil {
		notify(copied)
	}
}

// parseLocation converts a loosely-typed realtime payload into a Location.
// Coordinates are required and range-checked; other numeric fields default
// to 0 when missing or non-numeric. A missing heading is derived from the
// previous location's coordinate.
func parseLocation(raw []byte, prev *models.Location) (*models.Location, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	// Accept both a bare location object and the wrapped update shape
	if nested, ok := payload["location"].(map[string]interface{}); ok {
		payload = nested
	}

	lat, latOK := toFloat(payload["latitude"])
	lng, lngOK := toFloat(payload["longitude"])
	if !latOK || !lngOK {
		return nil, fmt.Errorf("missing coordinates")
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lng}
	if !coord.Valid() {
		return nil, fmt.Errorf("coordinates out of range: %.6f, %.6f", lat, lng)
	}

	loc := &models.Location{Coordinate: coord}

	if heading, ok := toFloat(payload["heading"]); ok {
		loc.Heading = utils.NormalizeBearing(heading)
	} else if prev != nil {
		if prev.Coordinate == coord {
			// Bearing is degenerate for identical points
			loc.Heading = prev.Heading
		} else {
			loc.Heading = utils.InitialBearing(prev.Coordinate, coord)
		}
	}

	if speed, ok := toFloat(payload["speed"]); ok && speed > 0 {
		loc.SpeedKmh = speed
	}
	if accuracy, ok := toFloat(payload["accuracy"]); ok && accuracy > 0 {
		loc.AccuracyM = accuracy
	}

	loc.Timestamp = parseTimestamp(payload["timestamp"])

	return loc, nil
}

// toFloat coerces loosely-typed numeric fields. Backend payloads carry
// numbers both as JSON numbers and as strings.
func toFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func parseTimestamp(v interface{}) time.Time {
	switch val := v.(type) {
	case float64:
		return time.Unix(int64(val), 0)
	case string:
		if ts, err := time.Parse(time.RFC3339, val); err == nil {
			return ts
		}
	}
	return time.Now()
}
