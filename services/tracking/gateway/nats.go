package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/antarride/tracking/internal/pkg/constants"
	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/models"
	natspkg "github.com/antarride/tracking/internal/pkg/nats"
	"github.com/antarride/tracking/services/tracking"
)

// natsGW implements the realtime gateway over NATS. Connection-level
// events (async errors, disconnects, reconnects) are fanned out to the
// status callback of every live subscription.
type natsGW struct {
	client *natspkg.Client

	mu       sync.Mutex
	statuses map[*nats.Subscription]func(models.ChannelStatus)
}

// NewRealtimeGW creates the NATS realtime gateway and installs the
// connection event handlers.
func NewRealtimeGW(client *natspkg.Client) tracking.RealtimeGW {
	g := &natsGW{
		client:   client,
		statuses: make(map[*nats.Subscription]func(models.ChannelStatus)),
	}

	conn := client.GetConn()
	conn.SetErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
		logger.Warn("NATS async error", logger.Err(err))
		g.notify(sub, models.ChannelError)
	})
	conn.SetDisconnectErrHandler(func(_ *nats.Conn, err error) {
		logger.Warn("NATS disconnected", logger.Err(err))
		g.notify(nil, models.ChannelTimedOut)
	})
	conn.SetReconnectHandler(func(_ *nats.Conn) {
		logger.Info("NATS reconnected")
		g.notify(nil, models.ChannelSubscribed)
	})

	return g
}

// SubscribeDriverLocation opens a live channel of location events for one
// (ride, driver) pair
func (g *natsGW) SubscribeDriverLocation(rideID, driverID string, onEvent func([]byte), onStatus func(models.ChannelStatus)) (tracking.Subscription, error) {
	subject := fmt.Sprintf(constants.SubjectDriverLocation, rideID, driverID)
	return g.subscribe(subject, onEvent, onStatus)
}

// SubscribeRideEvents opens a live channel of ride-record change events for
// a rider
func (g *natsGW) SubscribeRideEvents(riderID string, onEvent func([]byte), onStatus func(models.ChannelStatus)) (tracking.Subscription, error) {
	subject := fmt.Sprintf(constants.SubjectRiderRides, riderID)
	return g.subscribe(subject, onEvent, onStatus)
}

// PublishDriverLocation publishes a driver location event
func (g *natsGW) PublishDriverLocation(ctx context.Context, update *models.LocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	subject := fmt.Sprintf(constants.SubjectDriverLocation, update.RideID, update.DriverID)
	return g.client.Publish(subject, data)
}

// PublishDriverArrived publishes an arrival event on the ride event bus
func (g *natsGW) PublishDriverArrived(ctx context.Context, event *models.ArrivalEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal arrival event: %w", err)
	}

	return g.client.Publish(constants.SubjectDriverArrived, data)
}

func (g *natsGW) subscribe(subject string, onEvent func([]byte), onStatus func(models.ChannelStatus)) (tracking.Subscription, error) {
	sub, err := g.client.Subscribe(subject, func(msg *nats.Msg) {
		onEvent(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	if onStatus != nil {
		g.mu.Lock()
		g.statuses[sub] = onStatus
		g.mu.Unlock()
		onStatus(models.ChannelSubscribed)
	}

	return &natsSubscription{gw: g, sub: sub}, nil
}

// notify fans a channel status out to one subscription, or to all when
// sub is nil (connection-level events).
func (g *natsGW) notify(sub *nats.Subscription, status models.ChannelStatus) {
	g.mu.Lock()
	var fns []func(models.ChannelStatus)
	if sub != nil {
		if fn, ok := g.statuses[sub]; ok {
			fns = append(fns, fn)
		}
	} else {
		for _, fn := range g.statuses {
			fns = append(fns, fn)
		}
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn(status)
	}
}

func (g *natsGW) remove(sub *nats.Subscription) {
	g.mu.Lock()
	fn := g.statuses[sub]
	delete(g.statuses, sub)
	g.mu.Unlock()

	if fn != nil {
		fn(models.ChannelClosed)
	}
}

// natsSubscription is the handle returned to subscribers. Unsubscribe is
// idempotent.
type natsSubscription struct {
	gw   *natsGW
	sub  *nats.Subscription
	once sync.Once
}

func (s *natsSubscription) Unsubscribe() error {
	var err error
	s.once.Do(func() {
		err = s.sub.Unsubscribe()
		s.gw.remove(s.sub)
	})
	return err
}
