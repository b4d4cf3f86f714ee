package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarride/tracking/internal/pkg/jwt"
	"github.com/antarride/tracking/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
	}
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg.JWT)

	userID := uuid.New()
	token, _, err := jwt.GenerateToken(userID, "rider", cfg)
	require.NoError(t, err)

	claims, err := m.validateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "rider", (*claims)["role"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := jwt.GenerateToken(uuid.New(), "rider", cfg)
	require.NoError(t, err)

	other := NewManager(models.JWTConfig{Secret: "different-secret"})
	_, err = other.validateToken(token)
	assert.Error(t, err)
}

func TestHandleConnection_RejectsMissingToken(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg.JWT)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.HandleConnection(c, func(*models.WebSocketClient, *websocket.Conn) error {
		t.Fatal("handler must not run without credentials")
		return nil
	})

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestHandleConnection_AuthenticatedRoundTrip(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg.JWT)

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return m.HandleConnection(c, func(client *models.WebSocketClient, conn *websocket.Conn) error {
			return m.SendMessage(conn, "hello", map[string]string{"user_id": client.UserID})
		})
	})

	srv := httptest.NewServer(e)
	defer srv.Close()

	userID := uuid.New()
	token, _, err := jwt.GenerateToken(userID, "rider", cfg)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "hello", msg.Event)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, userID.String(), payload["user_id"])
}
