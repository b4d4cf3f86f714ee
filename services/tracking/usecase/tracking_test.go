package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/services/tracking"
	"github.com/antarride/tracking/services/tracking/mocks"
)

type ucFixture struct {
	locations *mocks.MockLocationRepo
	rides     *mocks.MockRideRepo
	realtime  *mocks.MockRealtimeGW
	notifier  *mocks.MockNotificationGW
	uc        tracking.TrackingUC
}

func newUCFixture(ctrl *gomock.Controller) *ucFixture {
	f := &ucFixture{
		locations: mocks.NewMockLocationRepo(ctrl),
		rides:     mocks.NewMockRideRepo(ctrl),
		realtime:  mocks.NewMockRealtimeGW(ctrl),
		notifier:  mocks.NewMockNotificationGW(ctrl),
	}
	cfg := &models.Config{Tracking: testTrackingConfig}
	f.uc = NewTrackingUC(cfg, f.locations, f.rides, f.realtime, f.notifier, nil)
	return f
}

// expectSessionChannels wires the ride event and driver location channel
// expectations for a trackable ride with a driver.
func (f *ucFixture) expectSessionChannels(ctrl *gomock.Controller, ride *models.Ride, locCh *capturedChannel) chan struct{} {
	rideSub := mocks.NewMockSubscription(ctrl)
	rideSub.EXPECT().Unsubscribe().Return(nil).AnyTimes()
	f.realtime.EXPECT().
		SubscribeRideEvents(ride.RiderID.String(), gomock.Any(), gomock.Any()).
		Return(rideSub, nil)

	locSub := mocks.NewMockSubscription(ctrl)
	locSub.EXPECT().Unsubscribe().Return(nil).AnyTimes()
	f.realtime.EXPECT().
		SubscribeDriverLocation(ride.RideID.String(), ride.DriverID.String(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _ string, onEvent func([]byte), onStatus func(models.ChannelStatus)) (tracking.Subscription, error) {
			locCh.onEvent = onEvent
			locCh.onStatus = onStatus
			return locSub, nil
		})

	return expectInitialFetch(f.locations, ride.DriverID.String(), nil)
}

func TestTrackingUsecase_StartAndSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)
	ride := makeRide(models.RideStatusAccepted, true)
	f.rides.EXPECT().GetActiveRideByRider(gomock.Any(), ride.RiderID.String()).Return(ride, nil)

	locCh := &capturedChannel{}
	fetched := f.expectSessionChannels(ctrl, ride, locCh)

	started, err := f.uc.StartForRider(context.Background(), ride.RiderID.String())
	require.NoError(t, err)
	require.NotNil(t, started)
	waitFor(t, fetched)

	locCh.onStatus(models.ChannelSubscribed)
	// Driver just over half a kilometer from the pickup
	locCh.onEvent([]byte(`{"latitude": 12.9680, "longitude": 77.5910}`))

	state, ok := f.uc.Snapshot(ride.RideID.String())
	require.True(t, ok)
	assert.True(t, state.IsTracking)
	assert.True(t, state.ShouldShowMap)
	require.NotNil(t, state.Location)
	require.NotNil(t, state.Ride)
	assert.Equal(t, ride.RideID, state.Ride.RideID)
	// Sub-kilometer distance floors to a 1 minute estimate, traffic-adjusted
	assert.InDelta(t, 1.2, state.EtaMinutes, 1e-9)
	assert.Equal(t, "1 min", state.EtaText)
}

func TestTrackingUsecase_StartNoActiveRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)

	f.rides.EXPECT().GetActiveRideByRider(gomock.Any(), "rider-1").Return(nil, nil)

	ride, err := f.uc.StartForRider(context.Background(), "rider-1")
	require.NoError(t, err)
	assert.Nil(t, ride)
}

func TestTrackingUsecase_DuplicateStartReusesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)
	ride := makeRide(models.RideStatusAccepted, true)
	f.rides.EXPECT().
		GetActiveRideByRider(gomock.Any(), ride.RiderID.String()).
		Return(ride, nil).
		Times(2)

	// Each channel may be opened once across both starts: a second live
	// subscription for the same pair would fail these expectations
	locCh := &capturedChannel{}
	fetched := f.expectSessionChannels(ctrl, ride, locCh)

	first, err := f.uc.StartForRider(context.Background(), ride.RiderID.String())
	require.NoError(t, err)
	require.NotNil(t, first)
	waitFor(t, fetched)

	second, err := f.uc.StartForRider(context.Background(), ride.RiderID.String())
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.RideID, second.RideID)
}

func TestTrackingUsecase_StopUnknownRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)
	assert.Error(t, f.uc.Stop(context.Background(), "missing-ride"))
}

func TestTrackingUsecase_WatcherNotifiedOnLocationChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)
	ride := makeRide(models.RideStatusAccepted, true)
	f.rides.EXPECT().GetActiveRideByRider(gomock.Any(), ride.RiderID.String()).Return(ride, nil)

	locCh := &capturedChannel{}
	fetched := f.expectSessionChannels(ctrl, ride, locCh)

	_, err := f.uc.StartForRider(context.Background(), ride.RiderID.String())
	require.NoError(t, err)
	waitFor(t, fetched)
	locCh.onStatus(models.ChannelSubscribed)

	var states []models.TrackingState
	cancel, ok := f.uc.Watch(ride.RideID.String(), func(st models.TrackingState) {
		states = append(states, st)
	})
	require.True(t, ok)
	defer cancel()

	locCh.onEvent([]byte(`{"latitude": 12.9680, "longitude": 77.5910}`))

	require.NotEmpty(t, states)
	last := states[len(states)-1]
	assert.True(t, last.ShouldShowMap)
	require.NotNil(t, last.Location)
	assert.InDelta(t, 12.9680, last.Location.Latitude, 1e-9)
}

func TestTrackingUsecase_WatchUnknownRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)
	_, ok := f.uc.Watch("missing-ride", func(models.TrackingState) {})
	assert.False(t, ok)
}

func TestTrackingUsecase_IngestDriverLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)

	location := &models.Location{
		Coordinate: models.Coordinate{Latitude: 12.9680, Longitude: 77.5910},
		Heading:    400,
	}

	f.locations.EXPECT().
		StoreDriverLocation(gomock.Any(), "driver-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, loc *models.Location) error {
			assert.False(t, loc.Timestamp.IsZero())
			assert.InDelta(t, 40.0, loc.Heading, 1e-9)
			return nil
		})
	f.realtime.EXPECT().
		PublishDriverLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *models.LocationUpdate) error {
			assert.Equal(t, "ride-1", update.RideID)
			assert.Equal(t, "driver-1", update.DriverID)
			return nil
		})

	err := f.uc.IngestDriverLocation(context.Background(), "ride-1", "driver-1", location)
	require.NoError(t, err)
}

func TestTrackingUsecase_IngestWithoutRideSkipsPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)

	location := &models.Location{Coordinate: models.Coordinate{Latitude: 12.9680, Longitude: 77.5910}}
	f.locations.EXPECT().StoreDriverLocation(gomock.Any(), "driver-1", gomock.Any()).Return(nil)

	require.NoError(t, f.uc.IngestDriverLocation(context.Background(), "", "driver-1", location))
}

func TestTrackingUsecase_IngestRejectsInvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(ctrl)

	err := f.uc.IngestDriverLocation(context.Background(), "ride-1", "driver-1",
		&models.Location{Coordinate: models.Coordinate{Latitude: 95, Longitude: 77.59}})
	assert.Error(t, err)

	err = f.uc.IngestDriverLocation(context.Background(), "ride-1", "driver-1", nil)
	assert.Error(t, err)
}
