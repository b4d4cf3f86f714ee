package constants

// NATS subjects
const (
	// Driver location stream, one subject per (ride, driver) pair.
	// Format: tracking.ride.{ride_id}.driver.{driver_id}.location
	SubjectDriverLocation = "tracking.ride.%s.driver.%s.location"

	// Ride-record change events for a rider.
	// Format: tracking.rider.{rider_id}.rides
	SubjectRiderRides = "tracking.rider.%s.rides"

	// Arrival events
	SubjectDriverArrived = "tracking.ride.arrived"
)
