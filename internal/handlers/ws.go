package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
	"github.com/gorilla/websocket"
)

// Hub tracks WebSocket subscribers so dashboards can refresh without polling.
type Hub struct {
	connections map[*websocket.Conn]bool
	mutex       sync.Mutex
}

func NewHub() *Hub {
	return &Hub{connections: make(map[*websocket.Conn]bool)}
}

// Broadcast sends a mutation event to every connected client. An empty status
// means the mutation did not touch the status field.
func (h *Hub) Broadcast(event string, id int64, status models.Status) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if len(h.connections) == 0 {
		return
	}

	payload := map[string]any{
		"event": event,
		"id":    id,
	}
	if status != "" {
		payload["status"] = status
	}
	message, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal ws event: %v", err)
		return
	}

	for conn := range h.connections {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Failed to send WebSocket message: %v", err)
			delete(h.connections, conn)
			conn.Close()
		}
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !h.RateLimiter.Allow(clientIP(r)) {
		sendMessage(w, http.StatusTooManyRequests, "Too many WebSocket connection attempts")
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.Hub.mutex.Lock()
	h.Hub.connections[conn] = true
	h.Hub.mutex.Unlock()

	// the server never expects client messages; the read loop only detects
	// disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.Hub.mutex.Lock()
			delete(h.Hub.connections, conn)
			h.Hub.mutex.Unlock()
			conn.Close()
			return
		}
	}
}
