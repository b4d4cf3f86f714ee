package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarride/tracking/internal/pkg/constants"
	"github.com/antarride/tracking/internal/pkg/database"
	"github.com/antarride/tracking/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, &database.RedisClient{Client: client}
}

func TestStoreDriverLocation(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewLocationRepository(client, models.TrackingConfig{LocationTTLHours: 24})

	ctx := context.Background()
	driverID := "driver-123"
	location := &models.Location{
		Coordinate: models.Coordinate{Latitude: -6.175392, Longitude: 106.827153},
		Heading:    87.5,
		SpeedKmh:   32.4,
		AccuracyM:  8,
		Timestamp:  time.Now(),
	}

	err := repo.StoreDriverLocation(ctx, driverID, location)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	assert.Equal(t, "-6.175392", mr.HGet(key, constants.FieldLatitude))
	assert.Equal(t, "106.827153", mr.HGet(key, constants.FieldLongitude))
	assert.Equal(t, "87.5", mr.HGet(key, constants.FieldHeading))
	assert.NotEmpty(t, mr.HGet(key, constants.FieldGeohash))

	ttl := mr.TTL(key)
	assert.Greater(t, ttl, 23*time.Hour)

	assert.True(t, mr.Exists(constants.KeyDriverGeo))
}

func TestGetLastLocation_RoundTrip(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewLocationRepository(client, models.TrackingConfig{LocationTTLHours: 24})

	ctx := context.Background()
	driverID := "driver-456"
	stored := &models.Location{
		Coordinate: models.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
		Heading:    44.3,
		SpeedKmh:   27.1,
		AccuracyM:  12,
		Timestamp:  time.Unix(1756400000, 0),
	}

	require.NoError(t, repo.StoreDriverLocation(ctx, driverID, stored))

	got, err := repo.GetLastLocation(ctx, driverID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.InDelta(t, stored.Latitude, got.Latitude, 1e-9)
	assert.InDelta(t, stored.Longitude, got.Longitude, 1e-9)
	assert.InDelta(t, stored.Heading, got.Heading, 1e-9)
	assert.InDelta(t, stored.SpeedKmh, got.SpeedKmh, 1e-9)
	assert.InDelta(t, stored.AccuracyM, got.AccuracyM, 1e-9)
	assert.True(t, stored.Timestamp.Equal(got.Timestamp))
}

func TestGetLastLocation_UnknownDriver(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewLocationRepository(client, models.TrackingConfig{LocationTTLHours: 24})

	got, err := repo.GetLastLocation(context.Background(), "never-reported")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetLastLocation_PartialRecord(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewLocationRepository(client, models.TrackingConfig{LocationTTLHours: 24})

	// Older records stored only coordinates and a timestamp
	key := fmt.Sprintf(constants.KeyDriverLocation, "driver-old")
	mr.HSet(key, constants.FieldLatitude, "12.9716")
	mr.HSet(key, constants.FieldLongitude, "77.5946")
	mr.HSet(key, constants.FieldTimestamp, "1756400000")

	got, err := repo.GetLastLocation(context.Background(), "driver-old")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 12.9716, got.Latitude, 1e-9)
	assert.Zero(t, got.Heading)
	assert.Zero(t, got.SpeedKmh)
}
