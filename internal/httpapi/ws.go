package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// progressInterval is how often a connected client receives a grid
// snapshot, the §5 "UI refresh ticker".
const progressInterval = 250 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type progressMessage struct {
	Type      string   `json:"type"`
	Grid      gridJSON `json:"grid,omitempty"`
	Searching bool     `json:"searching"`
}

// ServeProgressWS upgrades the connection and streams periodic grid
// snapshots until the client disconnects. It is read-only: the
// connection never accepts edits, matching the read/query boundary
// this adapter is scoped to. Each snapshot reads the grid through the
// engine's locked getters, and Autofill holds the engine mutex for its
// whole run, so while a search runs the next snapshot waits until the
// search returns; intermediate search states are not sent.
func (h *Handlers) ServeProgressWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("httpapi: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for range ticker.C {
		msg := progressMessage{
			Type:      "snapshot",
			Grid:      toGridJSON(h.engine),
			Searching: h.engine.IsSearching(),
		}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
