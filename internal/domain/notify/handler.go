package notify

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"swippe/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades clients onto the notification hub.
type WSHandler struct {
	hub *Hub
	jwt *jwt.Service
	log *zap.Logger
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service, log *zap.Logger) *WSHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WSHandler{hub: hub, jwt: jwtService, log: log}
}

// HandleWebSocket serves GET /ws/notifications?token=JWT.
// The token travels as a query parameter because websocket clients
// cannot set headers on the upgrade request.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "token is required"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	userID := claims.UserID
	h.hub.Register(userID, conn)
	h.log.Info("notification client connected", zap.Int64("user_id", userID))

	// Reads are only used to detect the close frame; clients never
	// send messages on this channel.
	go func() {
		defer h.hub.Unregister(userID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// RegisterRoutes mounts the websocket endpoint. Auth happens inside
// the handler via the token query parameter.
func RegisterRoutes(r *gin.RouterGroup, h *WSHandler) {
	r.GET("/ws/notifications", h.HandleWebSocket)
}
