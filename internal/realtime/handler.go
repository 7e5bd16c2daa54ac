package realtime

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientEnvelope is the single inbound frame shape. Type selects the
// action; the remaining fields are populated per type.
type clientEnvelope struct {
	Type      string `json:"type"`
	Token     string `json:"token,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
	Body      string `json:"body,omitempty"`
}

func errorEvent(msg string) gin.H {
	return gin.H{"type": "error", "message": msg}
}

// HandleWS upgrades the request and runs the connection's read loop
// until the peer goes away.
func (h *Hub) HandleWS(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := newConn(ws)
	h.register(conn)
	defer func() {
		h.unregister(conn)
		conn.close()
	}()

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var env clientEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			conn.send(errorEvent("invalid message format"))
			continue
		}

		switch env.Type {
		case "auth":
			if !h.handleAuth(conn, env) {
				return
			}
		case "join_channel":
			h.handleJoin(conn, env)
		case "chat_message":
			h.handleChat(conn, env)
		default:
			conn.send(errorEvent("unknown message type"))
		}
	}
}

// handleAuth runs the handshake. A failed handshake is terminal: the
// client is told why and the connection closes.
func (h *Hub) handleAuth(conn *Conn, env clientEnvelope) bool {
	token := strings.TrimSpace(env.Token)
	if token == "" {
		conn.send(gin.H{"type": "auth_error", "message": "token required"})
		return false
	}
	id, err := h.verify(token)
	if err != nil {
		conn.send(gin.H{"type": "auth_error", "message": "invalid token"})
		return false
	}
	conn.authenticate(id)
	conn.send(gin.H{"type": "auth_success", "userId": id.UserID})
	return true
}

// handleJoin binds the connection to a channel. Joining a second
// channel replaces the first; a connection listens to one channel at
// a time.
func (h *Hub) handleJoin(conn *Conn, env clientEnvelope) {
	if conn.Identity() == nil {
		conn.send(errorEvent("authentication required"))
		return
	}
	if env.ChannelID == "" {
		conn.send(errorEvent("channelId required"))
		return
	}
	conn.bind(env.ChannelID)
	conn.send(gin.H{"type": "joined", "channelId": env.ChannelID})
}

func (h *Hub) handleChat(conn *Conn, env clientEnvelope) {
	id := conn.Identity()
	if id == nil {
		conn.send(errorEvent("authentication required"))
		return
	}
	channelID := conn.Channel()
	if channelID == "" {
		conn.send(errorEvent("join a channel before sending messages"))
		return
	}
	if env.ChannelID != "" && env.ChannelID != channelID {
		conn.send(errorEvent("message channel does not match joined channel"))
		return
	}
	if strings.TrimSpace(env.Body) == "" {
		conn.send(errorEvent("message body required"))
		return
	}

	// Hold the dispatch lock across persist and fan-out so observers
	// of a channel see messages in the order they were stored.
	h.dispatchMu.Lock()
	defer h.dispatchMu.Unlock()

	msg, err := h.store.SaveChannelMessage(id.UserID, channelID, env.Body, nil)
	if err != nil {
		conn.send(errorEvent("failed to send message"))
		return
	}
	h.BroadcastToChannel(channelID, gin.H{"type": "new_message", "message": msg})
}
