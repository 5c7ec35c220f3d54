package updates

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is consumed cross-origin by the public frontend.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WelcomeEvent opens every subscription with the collection's current
// size, so a client can render state before the first change event.
type WelcomeEvent struct {
	Type  string    `json:"type"`
	Cards int       `json:"cards"`
	At    time.Time `json:"at"`
}

// WSHandler upgrades the connection, greets the client, and holds the
// subscription open until the peer hangs up. cardCount reports the
// store's current collection size for the welcome frame.
func WSHandler(hub *Hub, cardCount func() int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		// Greet before registering: once the conn is in the hub,
		// broadcasts may write to it from another goroutine, and the
		// connection supports only one writer at a time.
		welcome := WelcomeEvent{Type: EventWelcome, At: time.Now().UTC()}
		if cardCount != nil {
			welcome.Cards = cardCount()
		}
		if err := ws.WriteJSON(welcome); err != nil {
			_ = ws.Close()
			return
		}

		hub.Add(ws)
		log.Printf("[ws] client connected (%d active)", hub.Count())

		// Drain the connection; clients only listen, so the first read
		// error means the peer went away.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		log.Println("[ws] client disconnected")
	}
}
