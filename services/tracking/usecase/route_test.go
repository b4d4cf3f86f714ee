package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/services/tracking/mocks"
)

func TestEstimateRoute_ProviderSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	origin := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	destination := models.Coordinate{Latitude: 12.9352, Longitude: 77.6245}

	provided := &models.RouteEstimate{
		DistanceKm:  8.4,
		DurationMin: 22,
		Path:        []models.Coordinate{origin, {Latitude: 12.95, Longitude: 77.61}, destination},
	}

	mockDirections := mocks.NewMockDirectionsGW(ctrl)
	mockDirections.EXPECT().GetRoute(gomock.Any(), origin, destination).Return(provided, nil)

	estimator := NewRouteEstimator(mockDirections, testTrackingConfig)
	route, err := estimator.EstimateRoute(context.Background(), origin, destination)

	require.NoError(t, err)
	assert.False(t, route.Fallback)
	assert.InDelta(t, 8.4, route.DistanceKm, 1e-9)
	assert.Len(t, route.Path, 3)
}

func TestEstimateRoute_ProviderFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Roughly 7.3 km apart along a meridian
	origin := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	destination := models.Coordinate{Latitude: 13.03726, Longitude: 77.5946}

	mockDirections := mocks.NewMockDirectionsGW(ctrl)
	mockDirections.EXPECT().
		GetRoute(gomock.Any(), origin, destination).
		Return(nil, errors.New("provider unavailable"))

	estimator := NewRouteEstimator(mockDirections, testTrackingConfig)
	route, err := estimator.EstimateRoute(context.Background(), origin, destination)

	require.NoError(t, err)
	assert.True(t, route.Fallback)
	assert.InDelta(t, 7.3, route.DistanceKm, 0.05)
	assert.InDelta(t, 15, route.DurationMin, 1e-9)
	assert.Equal(t, []models.Coordinate{origin, destination}, route.Path)
}

func TestEstimateRoute_NoProviderConfigured(t *testing.T) {
	origin := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	destination := models.Coordinate{Latitude: 12.9352, Longitude: 77.6245}

	estimator := NewRouteEstimator(nil, testTrackingConfig)
	route, err := estimator.EstimateRoute(context.Background(), origin, destination)

	require.NoError(t, err)
	assert.True(t, route.Fallback)
	assert.Greater(t, route.DistanceKm, 0.0)
	assert.GreaterOrEqual(t, route.DurationMin, 1.0)
}

func TestEstimateRoute_InvalidCoordinates(t *testing.T) {
	estimator := NewRouteEstimator(nil, testTrackingConfig)

	_, err := estimator.EstimateRoute(context.Background(),
		models.Coordinate{Latitude: 120, Longitude: 77.59},
		models.Coordinate{Latitude: 12.93, Longitude: 77.62})

	assert.Error(t, err)
}
