package realtime

import (
	"sync"

	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Identity is what the external token-verification capability yields
// for a live connection.
type Identity struct {
	UserID            string
	Role              user.Role
	PreferredLanguage user.Language
}

// TokenVerifier checks a bearer credential. The hub never retries a
// failed handshake; it informs the client and closes.
type TokenVerifier func(token string) (Identity, error)

// MessageStore persists chat messages before any fan-out. The chat
// service implements it.
type MessageStore interface {
	SaveChannelMessage(senderID, channelID, body string, attachment datatypes.JSON) (chat.Message, error)
}

// Hub owns the set of live connections. It is an injected value, not a
// package singleton, so tests can run isolated instances.
type Hub struct {
	verify TokenVerifier
	store  MessageStore
	log    *zap.Logger

	mu    sync.RWMutex
	conns map[*Conn]struct{}

	// dispatchMu serializes persist-then-broadcast so that, per
	// channel, broadcast order always matches persist order.
	dispatchMu sync.Mutex
}

func NewHub(verify TokenVerifier, store MessageStore, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		verify: verify,
		store:  store,
		log:    log,
		conns:  make(map[*Conn]struct{}),
	}
}

// SetStore late-binds the message store. The hub is constructed before
// the services that depend on it for pushes, so the chat service
// arrives after construction.
func (h *Hub) SetStore(store MessageStore) {
	h.store = store
}

func (h *Hub) register(c *Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()
	h.log.Info("websocket client connected", zap.Int("total", total))
}

func (h *Hub) unregister(c *Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	total := len(h.conns)
	h.mu.Unlock()
	h.log.Info("websocket client disconnected", zap.Int("total", total))
}

// snapshot copies the registry so a connection disconnecting
// mid-broadcast cannot corrupt iteration.
func (h *Hub) snapshot() []*Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	conns := make([]*Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	return conns
}

// BroadcastToChannel delivers an event to every connection currently
// bound to the channel, and to no one else.
func (h *Hub) BroadcastToChannel(channelID string, event interface{}) {
	for _, c := range h.snapshot() {
		if c.Channel() == channelID {
			c.send(event)
		}
	}
}

// PushToUser delivers an event to every authenticated connection bound
// to the user, regardless of channel. Used for notifications.
func (h *Hub) PushToUser(userID string, event interface{}) {
	for _, c := range h.snapshot() {
		if c.UserID() == userID {
			c.send(event)
		}
	}
}

// ConnCount is used by tests and the reports endpoint.
func (h *Hub) ConnCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
