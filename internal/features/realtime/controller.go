package realtime

import (
	"net/http"

	users_services "builderspace-backend/internal/features/users/services"
	"builderspace-backend/internal/util/errs"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

type RealtimeController struct {
	userService *users_services.UserService
	registry    *ConnectionRegistry
	syncService *StateSyncService
	upgrader    websocket.Upgrader
}

func (c *RealtimeController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.HandleWebsocket)
}

// HandleWebsocket
// @Summary Open a realtime connection
// @Description Upgrade to WebSocket; authenticate via the token query parameter
// @Tags realtime
// @Param token query string true "JWT token"
// @Success 101
// @Failure 401 {object} map[string]string
// @Router /ws [get]
func (c *RealtimeController) HandleWebsocket(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token query parameter is required"})
		return
	}

	user, err := c.userService.GetUserFromToken(token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	socket, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn("Websocket upgrade failed", "userId", user.ID, "error", err)
		return
	}

	conn := NewWebsocketConnection(socket)
	c.registry.AddConnection(user.ID, conn)
	defer func() {
		c.registry.RemoveConnection(user.ID, conn)
		_ = conn.Close()
	}()

	_ = conn.WriteJSON(NewOutboundMessage(MessageTypeConnected, gin.H{
		"userId": user.ID,
	}, nil))

	// 5 msg/s with a burst of 10 per connection
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	for {
		var inbound InboundMessage
		if err := socket.ReadJSON(&inbound); err != nil {
			return
		}

		if !limiter.Allow() {
			_ = conn.WriteJSON(NewOutboundMessage(MessageTypeError, gin.H{
				"error": "rate limit exceeded",
			}, nil))
			continue
		}

		switch inbound.Type {
		case "sync":
			if err := c.syncService.SyncUserState(user.ID, inbound.WorkspaceID); err != nil {
				_ = conn.WriteJSON(NewOutboundMessage(MessageTypeError, gin.H{
					"error": err.Error(),
					"kind":  string(errs.KindOf(err)),
				}, nil))
			}
		default:
			_ = conn.WriteJSON(NewOutboundMessage(MessageTypeError, gin.H{
				"error": "unknown message type",
			}, nil))
		}
	}
}
