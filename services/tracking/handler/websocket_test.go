package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarride/tracking/internal/pkg/constants"
	"github.com/antarride/tracking/internal/pkg/jwt"
	"github.com/antarride/tracking/internal/pkg/models"
	"github.com/antarride/tracking/internal/pkg/websocket"
	"github.com/antarride/tracking/services/tracking/mocks"
)

func TestHandleTracking_ClosesAfterSessionEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
	}
	uc := mocks.NewMockTrackingUC(ctrl)
	manager := websocket.NewManager(cfg.JWT)
	h := NewWebSocketHandler(manager, uc)

	rideID := uuid.New().String()
	state := models.TrackingState{
		IsTracking: true,
		Ride:       &models.Ride{RideID: uuid.New(), Status: models.RideStatusAccepted},
	}

	notifyCh := make(chan func(models.TrackingState), 1)
	uc.EXPECT().Snapshot(rideID).Return(state, true)
	uc.EXPECT().Watch(rideID, gomock.Any()).
		DoAndReturn(func(_ string, fn func(models.TrackingState)) (func(), bool) {
			notifyCh <- fn
			return func() {}, true
		})

	e := echo.New()
	e.GET("/ws/tracking/:rideID", h.HandleTracking)
	srv := httptest.NewServer(e)
	defer srv.Close()

	token, _, err := jwt.GenerateToken(uuid.New(), "rider", cfg)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/tracking/" + rideID + "?token=" + token
	conn, resp, err := gorilla.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventTrackingState, msg.Event)

	var notify func(models.TrackingState)
	select {
	case notify = <-notifyCh:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher was never registered")
	}

	notify(models.TrackingState{IsTracking: false})

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventTrackingEnded, msg.Event)

	// The server closes the connection once the session is over
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}
