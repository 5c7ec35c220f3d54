package updates

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T) (*Hub, *websocket.Conn) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	router := gin.New()
	router.GET("/ws", WSHandler(hub, func() int { return 3 }))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// The welcome frame is always the first message: it is written
	// before the conn joins the hub, so no broadcast can precede it.
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), `"type":"welcome"`)
	assert.Contains(t, string(msg), `"cards":3`)

	return hub, conn
}

func TestHubBroadcastsToConnectedClients(t *testing.T) {
	hub, conn := dialTestHub(t)

	// The connection registers asynchronously in the handler.
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastJSON(CardEvent{Type: EventCardUpdated, CardID: "c1", At: time.Now().UTC()})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), EventCardUpdated)
	assert.Contains(t, string(msg), `"card_id":"c1"`)
}

func TestHubDropsClosedClients(t *testing.T) {
	hub, conn := dialTestHub(t)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()

	// A broadcast against the closed connection evicts it.
	require.Eventually(t, func() bool {
		hub.BroadcastJSON(CardEvent{Type: EventRefreshed, At: time.Now().UTC()})
		return hub.Count() == 0
	}, 2*time.Second, 20*time.Millisecond)
}
