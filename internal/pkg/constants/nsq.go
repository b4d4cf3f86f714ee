package constants

// NSQ topics
const (
	TopicDriverArrived = "notification_driver_arrived"
)
