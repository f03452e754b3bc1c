package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"newsportal/models"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Hub pushes live events to connected ticker clients: flash-news posts
// as they are published and newsletter dispatches. It implements
// store.Notifier.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Serve upgrades the request and keeps the connection registered until
// the client goes away. Clients only listen; inbound messages are
// discarded.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// broadcast sends v to every connected client, dropping clients whose
// connection fails.
func (h *Hub) broadcast(v interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(v); err != nil {
			log.Printf("Broadcast error: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// PostPublished announces a new flash-news post to the ticker.
func (h *Hub) PostPublished(p models.Post) {
	h.broadcast(map[string]interface{}{
		"type": "postPublished",
		"post": p,
	})
}

// NewsletterSent announces a newsletter dispatch.
func (h *Hub) NewsletterSent(subject, content, postID string, subscribers int) {
	h.broadcast(map[string]interface{}{
		"type":        "newsletterSent",
		"subject":     subject,
		"content":     content,
		"postId":      postID,
		"subscribers": subscribers,
	})
}
