package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/utils"
	"github.com/antarride/tracking/services/tracking"
)

// TrackingHandler handles HTTP requests for tracking operations
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// StartTracking resolves the rider's active ride and starts a tracking
// session for it
func (h *TrackingHandler) StartTracking(c echo.Context) error {
	riderID := c.Param("riderID")
	if riderID == "" {
		return utils.BadRequestResponse(c, "Rider ID is required")
	}

	ride, err := h.trackingUC.StartForRider(c.Request().Context(), riderID)
	if err != nil {
		logger.Error("Failed to start tracking",
			logger.String("rider_id", riderID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to start tracking: "+err.Error())
	}
	if ride == nil {
		return utils.NotFoundResponse(c, "No active ride for rider")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking started", ride)
}

// StopTracking ends the tracking session for a ride
func (h *TrackingHandler) StopTracking(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	if err := h.trackingUC.Stop(c.Request().Context(), rideID); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking stopped", nil)
}

// GetTrackingState returns the current tracking snapshot for a ride
func (h *TrackingHandler) GetTrackingState(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	state, ok := h.trackingUC.Snapshot(rideID)
	if !ok {
		return utils.NotFoundResponse(c, "No tracking session for ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking state", state)
}

// GetActiveRide returns the rider's current trackable ride without starting
// tracking
func (h *TrackingHandler) GetActiveRide(c echo.Context) error {
	riderID := c.Param("riderID")
	if riderID == "" {
		return utils.BadRequestResponse(c, "Rider ID is required")
	}

	ride, err := h.trackingUC.ResolveActiveRide(c.Request().Context(), riderID)
	if err != nil {
		logger.Error("Failed to resolve active ride",
			logger.String("rider_id", riderID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to resolve active ride: "+err.Error())
	}
	if ride == nil {
		return utils.NotFoundResponse(c, "No active ride for rider")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active ride", ride)
}

// ReportDriverLocation ingests a driver location report. The optional
// ride_id query parameter attaches the report to a live ride channel.
func (h *TrackingHandler) ReportDriverLocation(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var location models.Location
	if err := c.Bind(&location); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rideID := c.QueryParam("ride_id")

	if err := h.trackingUC.IngestDriverLocation(c.Request().Context(), rideID, driverID, &location); err != nil {
		logger.Error("Failed to ingest driver location",
			logger.String("driver_id", driverID),
			logger.String("ride_id", rideID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location recorded", nil)
}

// EstimateRoute returns a route between two points
func (h *TrackingHandler) EstimateRoute(c echo.Context) error {
	var req models.RouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	route, err := h.trackingUC.EstimateRoute(c.Request().Context(), req.Origin, req.Destination)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route estimate", route)
}
