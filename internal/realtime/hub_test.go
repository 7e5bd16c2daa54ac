package realtime

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"gorm.io/datatypes"
)

// stubVerifier accepts tokens of the form "token-<userID>".
func stubVerifier(token string) (Identity, error) {
	if !strings.HasPrefix(token, "token-") {
		return Identity{}, fmt.Errorf("bad token")
	}
	return Identity{UserID: strings.TrimPrefix(token, "token-")}, nil
}

// stubStore records every persisted message and hands back an ID.
type stubStore struct {
	mu    sync.Mutex
	seq   int
	saved []chat.Message
	fail  bool
}

func (s *stubStore) SaveChannelMessage(senderID, channelID, body string, attachment datatypes.JSON) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return chat.Message{}, fmt.Errorf("store down")
	}
	s.seq++
	msg := chat.Message{
		ID:        fmt.Sprintf("msg-%d", s.seq),
		ChannelID: &channelID,
		SenderID:  senderID,
		Body:      body,
	}
	s.saved = append(s.saved, msg)
	return msg, nil
}

func (s *stubStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func setupHubServer(t *testing.T) (*Hub, *stubStore, string) {
	gin.SetMode(gin.TestMode)
	store := &stubStore{}
	hub := NewHub(stubVerifier, store, nil)

	r := gin.New()
	r.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	return hub, store, wsURL
}

func dial(t *testing.T, wsURL string) *websocket.Conn {
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readEvent(t *testing.T, ws *websocket.Conn) map[string]interface{} {
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev map[string]interface{}
	require.NoError(t, ws.ReadJSON(&ev))
	return ev
}

func expectNoEvent(t *testing.T, ws *websocket.Conn) {
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var ev map[string]interface{}
	assert.Error(t, ws.ReadJSON(&ev), "unexpected event: %v", ev)
}

// authAndJoin runs the handshake and binds the connection to a channel.
func authAndJoin(t *testing.T, ws *websocket.Conn, userID, channelID string) {
	require.NoError(t, ws.WriteJSON(map[string]string{"type": "auth", "token": "token-" + userID}))
	ev := readEvent(t, ws)
	require.Equal(t, "auth_success", ev["type"])

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "join_channel", "channelId": channelID}))
	ev = readEvent(t, ws)
	require.Equal(t, "joined", ev["type"])
	require.Equal(t, channelID, ev["channelId"])
}

// --------------------- Handshake ---------------------

func TestAuthSuccess(t *testing.T) {
	_, _, wsURL := setupHubServer(t)
	ws := dial(t, wsURL)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "auth", "token": "token-u1"}))
	ev := readEvent(t, ws)
	assert.Equal(t, "auth_success", ev["type"])
	assert.Equal(t, "u1", ev["userId"])
}

func TestAuthFailureClosesConnection(t *testing.T) {
	_, _, wsURL := setupHubServer(t)
	ws := dial(t, wsURL)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "auth", "token": "garbage"}))
	ev := readEvent(t, ws)
	assert.Equal(t, "auth_error", ev["type"])
	assert.Equal(t, "invalid token", ev["message"])

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var next map[string]interface{}
	assert.Error(t, ws.ReadJSON(&next), "connection should be closed after failed auth")
}

func TestJoinRequiresAuth(t *testing.T) {
	_, _, wsURL := setupHubServer(t)
	ws := dial(t, wsURL)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "join_channel", "channelId": "ch-1"}))
	ev := readEvent(t, ws)
	assert.Equal(t, "error", ev["type"])
	assert.Equal(t, "authentication required", ev["message"])
}

func TestMalformedFrameKeepsConnectionAlive(t *testing.T) {
	_, _, wsURL := setupHubServer(t)
	ws := dial(t, wsURL)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("not json")))
	ev := readEvent(t, ws)
	assert.Equal(t, "error", ev["type"])
	assert.Equal(t, "invalid message format", ev["message"])

	// The protocol error is not terminal.
	require.NoError(t, ws.WriteJSON(map[string]string{"type": "auth", "token": "token-u1"}))
	ev = readEvent(t, ws)
	assert.Equal(t, "auth_success", ev["type"])
}

func TestUnknownMessageType(t *testing.T) {
	_, _, wsURL := setupHubServer(t)
	ws := dial(t, wsURL)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "ping"}))
	ev := readEvent(t, ws)
	assert.Equal(t, "error", ev["type"])
	assert.Equal(t, "unknown message type", ev["message"])
}

// --------------------- Chat fan-out ---------------------

func TestChatBroadcastToChannelMembers(t *testing.T) {
	_, store, wsURL := setupHubServer(t)

	sender := dial(t, wsURL)
	peer := dial(t, wsURL)
	outsider := dial(t, wsURL)
	authAndJoin(t, sender, "u1", "ch-1")
	authAndJoin(t, peer, "u2", "ch-1")
	authAndJoin(t, outsider, "u3", "ch-2")

	require.NoError(t, sender.WriteJSON(map[string]string{"type": "chat_message", "body": "hello"}))

	for _, ws := range []*websocket.Conn{sender, peer} {
		ev := readEvent(t, ws)
		assert.Equal(t, "new_message", ev["type"])
		msg := ev["message"].(map[string]interface{})
		assert.Equal(t, "hello", msg["body"])
		assert.Equal(t, "u1", msg["senderId"])
	}
	expectNoEvent(t, outsider)

	assert.Equal(t, 1, store.count())
}

func TestChatRequiresJoinedChannel(t *testing.T) {
	_, _, wsURL := setupHubServer(t)
	ws := dial(t, wsURL)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "auth", "token": "token-u1"}))
	readEvent(t, ws)

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "chat_message", "body": "hello"}))
	ev := readEvent(t, ws)
	assert.Equal(t, "error", ev["type"])
	assert.Equal(t, "join a channel before sending messages", ev["message"])
}

func TestChatMismatchedChannelRejected(t *testing.T) {
	_, store, wsURL := setupHubServer(t)
	ws := dial(t, wsURL)
	authAndJoin(t, ws, "u1", "ch-1")

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "chat_message", "channelId": "ch-2", "body": "hello"}))
	ev := readEvent(t, ws)
	assert.Equal(t, "error", ev["type"])
	assert.Equal(t, "message channel does not match joined channel", ev["message"])
	assert.Equal(t, 0, store.count())
}

func TestChatEmptyBodyRejected(t *testing.T) {
	_, store, wsURL := setupHubServer(t)
	ws := dial(t, wsURL)
	authAndJoin(t, ws, "u1", "ch-1")

	require.NoError(t, ws.WriteJSON(map[string]string{"type": "chat_message", "body": "   "}))
	ev := readEvent(t, ws)
	assert.Equal(t, "error", ev["type"])
	assert.Equal(t, "message body required", ev["message"])
	assert.Equal(t, 0, store.count())
}

func TestChatPersistFailureNotBroadcast(t *testing.T) {
	_, store, wsURL := setupHubServer(t)

	sender := dial(t, wsURL)
	peer := dial(t, wsURL)
	authAndJoin(t, sender, "u1", "ch-1")
	authAndJoin(t, peer, "u2", "ch-1")

	store.fail = true
	require.NoError(t, sender.WriteJSON(map[string]string{"type": "chat_message", "body": "hello"}))

	ev := readEvent(t, sender)
	assert.Equal(t, "error", ev["type"])
	assert.Equal(t, "failed to send message", ev["message"])
	expectNoEvent(t, peer)
}

func TestJoinReplacesPreviousChannel(t *testing.T) {
	_, _, wsURL := setupHubServer(t)

	mover := dial(t, wsURL)
	sender := dial(t, wsURL)
	authAndJoin(t, mover, "u1", "ch-1")
	authAndJoin(t, sender, "u2", "ch-1")

	require.NoError(t, mover.WriteJSON(map[string]string{"type": "join_channel", "channelId": "ch-2"}))
	ev := readEvent(t, mover)
	require.Equal(t, "joined", ev["type"])

	require.NoError(t, sender.WriteJSON(map[string]string{"type": "chat_message", "body": "left behind"}))
	readEvent(t, sender)
	expectNoEvent(t, mover)
}

// --------------------- Direct push ---------------------

func TestPushToUser(t *testing.T) {
	hub, _, wsURL := setupHubServer(t)

	target := dial(t, wsURL)
	other := dial(t, wsURL)
	authAndJoin(t, target, "u1", "ch-1")
	authAndJoin(t, other, "u2", "ch-1")

	hub.PushToUser("u1", map[string]string{"type": "new_notification"})

	ev := readEvent(t, target)
	assert.Equal(t, "new_notification", ev["type"])
	expectNoEvent(t, other)
}

func TestConnCountTracksRegistrations(t *testing.T) {
	hub, _, wsURL := setupHubServer(t)

	ws := dial(t, wsURL)
	require.Eventually(t, func() bool { return hub.ConnCount() == 1 }, time.Second, 10*time.Millisecond)

	ws.Close()
	require.Eventually(t, func() bool { return hub.ConnCount() == 0 }, time.Second, 10*time.Millisecond)
}
