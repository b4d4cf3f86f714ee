package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	jwtpkg "github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/antarride/tracking/internal/pkg/constants"
	"github.com/antarride/tracking/internal/pkg/jwt"
	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/models"
)

// Manager authenticates and tracks WebSocket connections
type Manager struct {
	sync.RWMutex
	clients  map[*websocket.Conn]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[*websocket.Conn]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection.
// handleClient runs for the lifetime of the connection.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	m.addClient(ws, client)
	defer m.removeClient(ws)

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		// Browsers cannot set headers on WebSocket dials; allow ?token=
		authHeader = "Bearer " + c.QueryParam("token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization required")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	client := &models.WebSocketClient{}
	if userID, ok := (*claims)["user_id"].(string); ok {
		client.UserID = userID
	}
	if role, ok := (*claims)["role"].(string); ok {
		client.Role = role
	}
	return client, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*jwtpkg.MapClaims, error) {
	return jwt.ValidateToken(tokenString, m.cfg.Secret)
}

func (m *Manager) addClient(conn *websocket.Conn, client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[conn] = client
}

func (m *Manager) removeClient(conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, conn)
}

// ClientCount returns the number of live connections
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendMessage sends an event message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	msg := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(msg)
}

// SendError sends an error message to a WebSocket client
func (m *Manager) SendError(conn *websocket.Conn, code, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
