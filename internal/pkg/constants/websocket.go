package constants

// WebSocket event types
const (
	EventError         = "error"
	EventPing          = "ping"
	EventPong          = "pong"
	EventTrackingState = "tracking_state"
	EventDriverArrived = "driver_arrived"
	EventTrackingEnded = "tracking_ended"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
	ErrorRideNotFound  = "ride_not_found"
)
