package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/services/tracking/mocks"
)

func performRequest(h echo.HandlerFunc, method, target, body string, paramNames, paramValues []string) *httptest.ResponseRecorder {
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)
	_ = h(c)
	return rec
}

func TestGetTrackingState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	state := models.TrackingState{IsTracking: true, ShouldShowMap: true, EtaText: "5 mins"}
	mockUC.EXPECT().Snapshot("ride-1").Return(state, true)

	rec := performRequest(h.GetTrackingState, http.MethodGet, "/tracking/ride-1", "",
		[]string{"rideID"}, []string{"ride-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_tracking":true`)
	assert.Contains(t, rec.Body.String(), "5 mins")
}

func TestGetTrackingState_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	mockUC.EXPECT().Snapshot("ride-404").Return(models.TrackingState{}, false)

	rec := performRequest(h.GetTrackingState, http.MethodGet, "/tracking/ride-404", "",
		[]string{"rideID"}, []string{"ride-404"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	ride := &models.Ride{RideID: uuid.New(), Status: models.RideStatusAccepted}
	mockUC.EXPECT().StartForRider(gomock.Any(), "rider-1").Return(ride, nil)

	rec := performRequest(h.StartTracking, http.MethodPost, "/tracking/rider/rider-1/start", "",
		[]string{"riderID"}, []string{"rider-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ride.RideID.String())
}

func TestStartTracking_NoActiveRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	mockUC.EXPECT().StartForRider(gomock.Any(), "rider-1").Return(nil, nil)

	rec := performRequest(h.StartTracking, http.MethodPost, "/tracking/rider/rider-1/start", "",
		[]string{"riderID"}, []string{"rider-1"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartTracking_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	mockUC.EXPECT().StartForRider(gomock.Any(), "rider-1").Return(nil, errors.New("db down"))

	rec := performRequest(h.StartTracking, http.MethodPost, "/tracking/rider/rider-1/start", "",
		[]string{"riderID"}, []string{"rider-1"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStopTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	mockUC.EXPECT().Stop(gomock.Any(), "ride-1").Return(nil)

	rec := performRequest(h.StopTracking, http.MethodPost, "/tracking/ride-1/stop", "",
		[]string{"rideID"}, []string{"ride-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReportDriverLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	mockUC.EXPECT().
		IngestDriverLocation(gomock.Any(), "", "driver-1", gomock.Any()).
		Return(nil)

	body := `{"latitude": 12.9680, "longitude": 77.5910, "heading": 44.3, "speed": 24.5}`
	rec := performRequest(h.ReportDriverLocation, http.MethodPost, "/drivers/driver-1/location", body,
		[]string{"driverID"}, []string{"driver-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReportDriverLocation_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	mockUC.EXPECT().
		IngestDriverLocation(gomock.Any(), "", "driver-1", gomock.Any()).
		Return(errors.New("invalid location coordinates"))

	body := `{"latitude": 200, "longitude": 77.5910}`
	rec := performRequest(h.ReportDriverLocation, http.MethodPost, "/drivers/driver-1/location", body,
		[]string{"driverID"}, []string{"driver-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimateRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	estimate := &models.RouteEstimate{DistanceKm: 7.3, DurationMin: 15, Fallback: true}
	mockUC.EXPECT().
		EstimateRoute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(estimate, nil)

	body := `{"origin": {"latitude": 12.9716, "longitude": 77.5946}, "destination": {"latitude": 13.0372, "longitude": 77.5946}}`
	rec := performRequest(h.EstimateRoute, http.MethodPost, "/routes/estimate", body, nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fallback":true`)
}

func TestGetActiveRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)

	ride := &models.Ride{RideID: uuid.New(), Status: models.RideStatusInProgress}
	mockUC.EXPECT().ResolveActiveRide(gomock.Any(), "rider-1").Return(ride, nil)

	rec := performRequest(h.GetActiveRide, http.MethodGet, "/rides/active/rider-1", "",
		[]string{"riderID"}, []string{"rider-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ride.RideID.String())
}
