package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarride/tracking/internal/pkg/models"
)

func setupSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

var rideTestColumns = []string{
	"ride_id", "rider_id", "driver_id", "status",
	"pickup_latitude", "pickup_longitude", "pickup_address",
	"destination_latitude", "destination_longitude", "destination_address",
	"fare_amount", "created_at", "updated_at",
}

func TestGetActiveRideByRider(t *testing.T) {
	db, mock := setupSQLMock(t)
	defer db.Close()

	repo := NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	riderID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(rideTestColumns).AddRow(
		rideID.String(), riderID.String(), driverID.String(), "accepted",
		12.9716, 77.5946, "MG Road",
		12.9352, 77.6245, "Koramangala",
		18500, now, now,
	)

	mock.ExpectQuery(`SELECT(.|\n)+FROM rides(.|\n)+ORDER BY created_at DESC, ride_id DESC(.|\n)+LIMIT 1`).
		WithArgs(riderID.String(),
			"requested", "accepted", "driver_arrived", "in_progress", "picked_up").
		WillReturnRows(rows)

	ride, err := repo.GetActiveRideByRider(context.Background(), riderID.String())
	require.NoError(t, err)
	require.NotNil(t, ride)

	assert.Equal(t, rideID, ride.RideID)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	require.NotNil(t, ride.DriverID)
	assert.Equal(t, driverID, *ride.DriverID)
	assert.InDelta(t, 12.9716, ride.PickupLatitude, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveRideByRider_NoTrackableRide(t *testing.T) {
	db, mock := setupSQLMock(t)
	defer db.Close()

	repo := NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(`SELECT(.|\n)+FROM rides`).
		WillReturnError(sql.ErrNoRows)

	ride, err := repo.GetActiveRideByRider(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, ride)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide(t *testing.T) {
	db, mock := setupSQLMock(t)
	defer db.Close()

	repo := NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	riderID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(rideTestColumns).AddRow(
		rideID.String(), riderID.String(), nil, "requested",
		12.9716, 77.5946, "MG Road",
		nil, nil, "",
		0, now, now,
	)

	mock.ExpectQuery(`SELECT(.|\n)+FROM rides(.|\n)+WHERE ride_id`).
		WithArgs(rideID.String()).
		WillReturnRows(rows)

	ride, err := repo.GetRide(context.Background(), rideID.String())
	require.NoError(t, err)
	require.NotNil(t, ride)

	assert.Nil(t, ride.DriverID)
	assert.Nil(t, ride.DestinationCoordinate())
	assert.False(t, ride.HasDriver())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide_NotFound(t *testing.T) {
	db, mock := setupSQLMock(t)
	defer db.Close()

	repo := NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(`SELECT(.|\n)+FROM rides`).
		WillReturnError(sql.ErrNoRows)

	ride, err := repo.GetRide(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, ride)
	assert.NoError(t, mock.ExpectationsWereMet())
}
