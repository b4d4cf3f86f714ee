package handler

import (
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/antarride/tracking/internal/pkg/constants"
	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/pkg/websocket"
	"github.com/antarride/tracking/internal/utils"
	"github.com/antarride/tracking/services/tracking"
)

// WebSocketHandler streams tracking state changes to ride watchers
type WebSocketHandler struct {
	manager    *websocket.Manager
	trackingUC tracking.TrackingUC
}

// NewWebSocketHandler creates a new tracking WebSocket handler
func NewWebSocketHandler(manager *websocket.Manager, trackingUC tracking.TrackingUC) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		trackingUC: trackingUC,
	}
}

// HandleTracking upgrades the connection and pushes a state snapshot on
// every change until the client disconnects or the session ends. Pending
// snapshots coalesce: a slow client receives the latest state, not every
// intermediate one.
func (h *WebSocketHandler) HandleTracking(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, conn *gorilla.Conn) error {
		state, ok := h.trackingUC.Snapshot(rideID)
		if !ok {
			return h.manager.SendError(conn, constants.ErrorRideNotFound, "No tracking session for ride")
		}

		if err := h.manager.SendMessage(conn, constants.EventTrackingState, state); err != nil {
			return err
		}

		// Size-1 buffer plus drain implements last-delivered-wins
		updates := make(chan models.TrackingState, 1)
		cancel, ok := h.trackingUC.Watch(rideID, func(st models.TrackingState) {
			select {
			case updates <- st:
			default:
				select {
				case <-updates:
				default:
				}
				select {
				case updates <- st:
				default:
				}
			}
		})
		if !ok {
			return h.manager.SendError(conn, constants.ErrorRideNotFound, "No tracking session for ride")
		}
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		logger.Info("Tracking watcher connected",
			logger.String("ride_id", rideID),
			logger.String("user_id", client.UserID))

		for {
			select {
			case st := <-updates:
				event := constants.EventTrackingState
				ended := !st.IsTracking && st.Ride == nil
				if ended {
					event = constants.EventTrackingEnded
				}
				if err := h.manager.SendMessage(conn, event, st); err != nil {
					return err
				}
				if ended {
					// The session is gone; no further updates will arrive
					return nil
				}
			case <-done:
				return nil
			}
		}
	})
}
