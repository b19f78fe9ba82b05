package forum

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans newly created posts out to websocket subscribers of a thread.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int64]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Subscribe(threadID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[threadID] == nil {
		h.subscribers[threadID] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[threadID][conn] = true
}

func (h *Hub) Unsubscribe(threadID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.subscribers[threadID]; ok {
		_ = conn.Close()
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.subscribers, threadID)
		}
	}
}

// Broadcast writes the message to every subscriber of the thread; dead
// connections are dropped.
func (h *Hub) Broadcast(threadID int64, message interface{}) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[threadID]))
	for conn := range h.subscribers[threadID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unsubscribe(threadID, conn)
		}
	}
}

func (h *Hub) SubscriberCount(threadID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[threadID])
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for threadID, conns := range h.subscribers {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.subscribers, threadID)
	}
}
