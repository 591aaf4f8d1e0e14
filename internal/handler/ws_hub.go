package handler

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/whiskerforge/catcombo/api/internal/model"
)

// Event types sent over WebSocket.
const (
	EventConnected       = "connected"
	EventCatalogReloaded = "catalog_reloaded"
)

// WSEvent is the envelope for all WebSocket messages.
type WSEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// WSConn wraps a WebSocket connection with its outbound queue.
type WSConn struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub manages the set of connected WebSocket clients. Every client
// receives every catalog event; there are no per-topic subscriptions.
type Hub struct {
	mu          sync.RWMutex
	connections map[*WSConn]bool
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{connections: make(map[*WSConn]bool)}
}

// Register adds a connection to the hub.
func (h *Hub) Register(c *WSConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = true
}

// Unregister removes a connection from the hub.
func (h *Hub) Unregister(c *WSConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connections[c] {
		delete(h.connections, c)
		close(c.send)
	}
}

// Broadcast sends an event to every connected client. Clients with a
// full send buffer are skipped rather than blocking the broadcast.
func (h *Hub) Broadcast(event WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal WebSocket event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.connections {
		select {
		case c.send <- data:
		default:
			log.Warn().Str("type", event.Type).Msg("Dropping WebSocket message, buffer full")
		}
	}
}

// BroadcastCatalogReloaded implements service.Broadcaster: clients get
// the fresh snapshot info so they can refresh effect-type lists.
func (h *Hub) BroadcastCatalogReloaded(info model.CatalogInfo) {
	h.Broadcast(WSEvent{Type: EventCatalogReloaded, Data: info})
}

// ConnectionCount returns the number of active connections.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
