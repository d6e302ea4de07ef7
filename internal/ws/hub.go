package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// AllCategories is the feed key of subscribers that want every event.
const AllCategories uint = 0

const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans question events out to websocket subscribers, grouped by the
// category they watch.
type Hub struct {
	mu    sync.Mutex
	feeds map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		feeds: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(categoryID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.feeds[categoryID] == nil {
		h.feeds[categoryID] = make(map[*websocket.Conn]bool)
	}
	h.feeds[categoryID][conn] = true
	log.Printf("ws: subscriber joined category %d feed (total: %d)", categoryID, len(h.feeds[categoryID]))
}

func (h *Hub) RemoveConnection(categoryID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.feeds[categoryID]; ok {
		if !conns[conn] {
			return
		}
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.feeds, categoryID)
		}
		log.Printf("ws: subscriber left category %d feed", categoryID)
	}
}

// Subscribers counts the connections watching categoryID.
func (h *Hub) Subscribers(categoryID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.feeds[categoryID])
}

// Broadcast sends message to the categoryID feed and to the all-categories
// feed. Connections that fail a write are dropped.
func (h *Hub) Broadcast(categoryID uint, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	keys := []uint{AllCategories}
	if categoryID != AllCategories {
		keys = append(keys, categoryID)
	}
	for _, key := range keys {
		conns := h.feeds[key]
		for conn := range conns {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("ws: write error: %v", err)
				conn.Close()
				delete(conns, conn)
			}
		}
		if len(conns) == 0 {
			delete(h.feeds, key)
		}
	}
}
