package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/antarride/tracking/internal/pkg/constants"
	"github.com/antarride/tracking/internal/pkg/database"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/utils"
	"github.com/antarride/tracking/services/tracking"
)

// defaultLocationTTL keeps last-known locations around long enough for
// trip history analysis
const defaultLocationTTL = 24 * time.Hour

type locationRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLocationRepository creates a Redis-backed location repository
func NewLocationRepository(redisClient *database.RedisClient, cfg models.TrackingConfig) tracking.LocationRepo {
	ttl := defaultLocationTTL
	if cfg.LocationTTLHours > 0 {
		ttl = time.Duration(cfg.LocationTTLHours) * time.Hour
	}
	return &locationRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// StoreDriverLocation stores the latest location for a driver and refreshes
// the shared geo index
func (r *locationRepo) StoreDriverLocation(ctx context.Context, driverID string, location *models.Location) error {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldHeading:   strconv.FormatFloat(location.Heading, 'f', -1, 64),
		constants.FieldSpeed:     strconv.FormatFloat(location.SpeedKmh, 'f', -1, 64),
		constants.FieldAccuracy:  strconv.FormatFloat(location.AccuracyM, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(location.Timestamp.Unix(), 10),
		constants.FieldGeohash:   utils.EncodeLocation(location.Coordinate, 9),
	}

	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}

	if err := r.redisClient.Expire(ctx, locationKey, r.ttl); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to update driver geo index: %w", err)
	}

	return nil
}

// GetLastLocation returns the last stored location for a driver, or nil
// when the driver has never reported or the record expired
func (r *locationRepo) GetLastLocation(ctx context.Context, driverID string) (*models.Location, error) {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	values, err := r.redisClient.HMGet(ctx, locationKey,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldHeading,
		constants.FieldSpeed,
		constants.FieldAccuracy,
		constants.FieldTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}

	if len(values) != 6 || values[0] == "" || values[1] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	location := &models.Location{
		Coordinate: models.Coordinate{Latitude: lat, Longitude: lng},
		Timestamp:  time.Now(),
	}

	// Optional fields tolerate older records that never stored them
	if heading, err := strconv.ParseFloat(values[2], 64); err == nil {
		location.Heading = utils.NormalizeBearing(heading)
	}
	if speed, err := strconv.ParseFloat(values[3], 64); err == nil && speed > 0 {
		location.SpeedKmh = speed
	}
	if accuracy, err := strconv.ParseFloat(values[4], 64); err == nil && accuracy > 0 {
		location.AccuracyM = accuracy
	}
	if ts, err := strconv.ParseInt(values[5], 10, 64); err == nil {
		location.Timestamp = time.Unix(ts, 0)
	}

	return location, nil
}
