package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/pkg/websocket"
	"github.com/antarride/tracking/services/tracking"
)

// Handler combines all handlers for the tracking service
type Handler struct {
	trackingHTTP *TrackingHandler
	trackingWS   *WebSocketHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(trackingUC tracking.TrackingUC, cfg *models.Config) *Handler {
	wsManager := websocket.NewManager(cfg.JWT)
	return &Handler{
		trackingHTTP: NewTrackingHandler(trackingUC),
		trackingWS:   NewWebSocketHandler(wsManager, trackingUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	trackingGroup := e.Group("/tracking")
	trackingGroup.GET("/:rideID", h.trackingHTTP.GetTrackingState)
	trackingGroup.POST("/rider/:riderID/start", h.trackingHTTP.StartTracking)
	trackingGroup.POST("/:rideID/stop", h.trackingHTTP.StopTracking)

	e.GET("/rides/active/:riderID", h.trackingHTTP.GetActiveRide)
	e.POST("/drivers/:driverID/location", h.trackingHTTP.ReportDriverLocation)
	e.POST("/routes/estimate", h.trackingHTTP.EstimateRoute)

	e.GET("/ws/tracking/:rideID", h.trackingWS.HandleTracking)
}
