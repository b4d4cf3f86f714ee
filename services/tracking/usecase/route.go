package usecase

import (
	"context"
	"fmt"

	"github.com/antarride/tracking/internal/pkg/circuitbreaker"
	"github.com/antarride/tracking/internal/pkg/eta"
	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/utils"
	"github.com/antarride/tracking/services/tracking"
)

// RouteEstimator produces route estimates from the directions provider,
// degrading to a straight-line estimate when the provider is unavailable
// or not configured. Provider calls go through a circuit breaker so a
// failing upstream does not add latency to every request.
type RouteEstimator struct {
	directions tracking.DirectionsGW // nil when no provider is configured
	breaker    *circuitbreaker.CircuitBreaker
	cfg        models.TrackingConfig
}

// NewRouteEstimator creates an estimator. A nil directions gateway means
// every estimate uses the straight-line fallback.
func NewRouteEstimator(directions tracking.DirectionsGW, cfg models.TrackingConfig) *RouteEstimator {
	return &RouteEstimator{
		directions: directions,
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig("directions-provider")),
		cfg:        cfg,
	}
}

// EstimateRoute returns a route between two valid coordinates. The result
// is never nil on success: a provider failure yields the fallback estimate
// with Fallback set.
func (e *RouteEstimator) EstimateRoute(ctx context.Context, origin, destination models.Coordinate) (*models.RouteEstimate, error) {
	if !origin.Valid() || !destination.Valid() {
		return nil, fmt.Errorf("invalid coordinates for route estimate")
	}

	if e.directions != nil {
		var route *models.RouteEstimate
		err := e.breaker.Execute(ctx, func(ctx context.Context) error {
			r, err := e.directions.GetRoute(ctx, origin, destination)
			if err != nil {
				return err
			}
			route = r
			return nil
		})
		if err == nil && route != nil {
			return route, nil
		}
		logger.Warn("Directions provider unavailable, using straight-line estimate",
			logger.Err(err))
	}

	return e.fallbackRoute(origin, destination), nil
}

func (e *RouteEstimator) fallbackRoute(origin, destination models.Coordinate) *models.RouteEstimate {
	speed := e.cfg.FallbackSpeedKmh
	if speed <= 0 {
		speed = 30
	}
	distance := utils.DistanceKm(origin, destination)
	return &models.RouteEstimate{
		DistanceKm:  distance,
		DurationMin: eta.EstimateMinutes(distance, speed),
		Path:        []models.Coordinate{origin, destination},
		Fallback:    true,
	}
}
