package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Conn wraps a websocket connection with its per-connection state.
// State mutations happen only on the connection's own read loop;
// reads may come from broadcasting goroutines, hence the mutex.
type Conn struct {
	ws *websocket.Conn

	stateMu  sync.RWMutex
	identity *Identity
	channel  string

	// writeMu serializes writes: gorilla/websocket allows at most one
	// concurrent writer per connection.
	writeMu sync.Mutex
}

func newConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

func (c *Conn) authenticate(id Identity) {
	c.stateMu.Lock()
	c.identity = &id
	c.stateMu.Unlock()
}

func (c *Conn) bind(channelID string) {
	c.stateMu.Lock()
	c.channel = channelID
	c.stateMu.Unlock()
}

func (c *Conn) Identity() *Identity {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.identity
}

func (c *Conn) UserID() string {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	if c.identity == nil {
		return ""
	}
	return c.identity.UserID
}

func (c *Conn) Channel() string {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.channel
}

func (c *Conn) send(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(v)
}

func (c *Conn) close() {
	c.ws.Close()
}
