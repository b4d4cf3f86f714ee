package gateway

import (
	"context"
	"fmt"

	"github.com/antarride/tracking/internal/pkg/constants"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/pkg/nsq"
	"github.com/antarride/tracking/services/tracking"
)

type nsqGW struct {
	producer *nsq.Producer
}

// NewNotificationGW creates an NSQ-backed notification gateway
func NewNotificationGW(producer *nsq.Producer) tracking.NotificationGW {
	return &nsqGW{producer: producer}
}

// NotifyDriverArrived publishes an arrival notification for the rider's
// notification pipeline
func (g *nsqGW) NotifyDriverArrived(ctx context.Context, event *models.ArrivalEvent) error {
	if err := g.producer.Publish(constants.TopicDriverArrived, event); err != nil {
		return fmt.Errorf("failed to publish arrival notification: %w", err)
	}
	return nil
}
