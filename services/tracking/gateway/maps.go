package gateway

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/services/tracking"
)

type mapsGW struct {
	client *maps.Client
}

// NewDirectionsGW creates a Google Maps directions gateway. Returns an
// error when the API key is rejected by the client.
func NewDirectionsGW(apiKey string) (tracking.DirectionsGW, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &mapsGW{client: client}, nil
}

// GetRoute returns the driving route between two points
func (g *mapsGW) GetRoute(ctx context.Context, origin, destination models.Coordinate) (*models.RouteEstimate, error) {
	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude),
		Destination: fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	route := routes[0]
	leg := route.Legs[0]

	path, err := route.OverviewPolyline.Decode()
	if err != nil {
		// The leg totals are still usable without the geometry
		path = nil
	}

	estimate := &models.RouteEstimate{
		DistanceKm:  float64(leg.Distance.Meters) / 1000.0,
		DurationMin: leg.Duration.Minutes(),
		Path:        make([]models.Coordinate, 0, len(path)),
	}
	for _, p := range path {
		estimate.Path = append(estimate.Path, models.Coordinate{
			Latitude:  p.Lat,
			Longitude: p.Lng,
		})
	}
	if len(estimate.Path) == 0 {
		estimate.Path = []models.Coordinate{origin, destination}
	}

	return estimate, nil
}
