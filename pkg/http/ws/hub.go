// Package ws implements the WebSocket fight feed: a hub of subscriber
// connections that receive every fight result as it happens.
package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const writeTimeout = 10 * time.Second

// Connection wraps a websocket connection with a write lock, since
// gorilla connections allow only one concurrent writer.
type Connection struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewConnection wraps an upgraded websocket connection.
func NewConnection(conn *websocket.Conn) *Connection {
	return &Connection{conn: conn}
}

// Send writes a message as JSON with a write deadline.
func (c *Connection) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(msg)
}

// Close closes the underlying connection.
func (c *Connection) Close() error {
	return c.conn.Close()
}

// Hub manages feed subscribers and broadcasts messages to all of them.
type Hub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]*Connection
	logger      zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]*Connection),
		logger:      logger.With().Str("component", "ws_hub").Logger(),
	}
}

// Register adds a subscriber and returns its connection ID.
func (h *Hub) Register(conn *Connection) uuid.UUID {
	id := uuid.New()

	h.mu.Lock()
	h.connections[id] = conn
	h.mu.Unlock()

	h.logger.Info().Str("conn_id", id.String()).Msg("feed subscriber registered")
	return id
}

// Unregister removes and closes a subscriber.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	conn, exists := h.connections[id]
	if exists {
		delete(h.connections, id)
	}
	h.mu.Unlock()

	if exists {
		_ = conn.Close()
		h.logger.Info().Str("conn_id", id.String()).Msg("feed subscriber unregistered")
	}
}

// Broadcast sends a message to every subscriber. Dead connections are
// dropped.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	targets := make(map[uuid.UUID]*Connection, len(h.connections))
	for id, conn := range h.connections {
		targets[id] = conn
	}
	h.mu.RUnlock()

	for id, conn := range targets {
		if err := conn.Send(msg); err != nil {
			h.logger.Warn().Err(err).Str("conn_id", id.String()).Msg("dropping dead feed subscriber")
			h.Unregister(id)
		}
	}
}

// Count returns the number of active subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
