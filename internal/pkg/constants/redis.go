package constants

// Redis key formats
const (
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverGeo      = "drivers:geo"        // Geo set of all driver positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldSpeed     = "speed"
	FieldAccuracy  = "accuracy"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
)
