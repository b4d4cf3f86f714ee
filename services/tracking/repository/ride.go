package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/services/tracking"
)

type rideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a Postgres-backed ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) tracking.RideRepo {
	return &rideRepo{
		cfg: cfg,
		db:  db,
	}
}

const rideColumns = `
	ride_id, rider_id, driver_id, status,
	pickup_latitude, pickup_longitude, pickup_address,
	destination_latitude, destination_longitude, destination_address,
	fare_amount, created_at, updated_at
`

// GetActiveRideByRider returns the rider's most recently created ride in a
// trackable status. Ties on created_at break on ride_id so the result is
// deterministic. Returns nil when the rider has no trackable ride.
func (r *rideRepo) GetActiveRideByRider(ctx context.Context, riderID string) (*models.Ride, error) {
	statuses := make([]string, len(models.TrackableStatuses))
	for i, s := range models.TrackableStatuses {
		statuses[i] = string(s)
	}

	query, args, err := sqlx.In(`
		SELECT `+rideColumns+`
		FROM rides
		WHERE rider_id = ?
		  AND status IN (?)
		ORDER BY created_at DESC, ride_id DESC
		LIMIT 1
	`, riderID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to build active ride query: %w", err)
	}

	var ride models.Ride
	err = r.db.GetContext(ctx, &ride, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active ride: %w", err)
	}
	return &ride, nil
}

// GetRide returns a ride by id, or nil when it does not exist
func (r *rideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	query := `
		SELECT ` + rideColumns + `
		FROM rides
		WHERE ride_id = $1
	`

	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, query, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}
