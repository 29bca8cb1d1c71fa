// Package notify fans committed orders out to interested parties: websocket
// listeners (kitchen/back-office screens) and an optional HTTP webhook.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub keeps the live websocket connections. It is constructed in main and
// handed to the controllers that need it; there is no package-level instance.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Handler upgrades the request and keeps the connection registered until the
// peer goes away.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

// Broadcast pushes a committed order to every connected client. Write
// failures drop the client.
func (h *Hub) Broadcast(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			log.WithError(err).Debug("dropping websocket client")
			client.Close()
			delete(h.clients, client)
		}
	}
}
