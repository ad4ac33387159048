package live

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	EventConnected = "connected"
	EventCooldown  = "cooldown"
	EventError     = "error"

	sendBuffer = 64
)

type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type client struct {
	id          string
	userID      uuid.UUID
	groupID     uuid.UUID
	conn        *websocket.Conn
	send        chan []byte
	connectedAt time.Time
}

// Hub tracks open live sessions per user and fans server events out to them,
// either to one user or to everyone attached to a group.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*client]struct{}),
		logger:  logger.With("component", "live"),
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.logger.Info("live session opened", "session_id", c.id, "user_id", c.userID, "sessions", len(set))
}

// unregister closes c.send exactly once; after it returns no event reaches c.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	close(c.send)
	h.logger.Info("live session closed",
		"session_id", c.id,
		"user_id", c.userID,
		"duration", time.Since(c.connectedAt).Round(time.Second))
}

// NotifyUser queues an event for every open session of userID. Sessions whose
// buffer is full miss the event rather than block the caller.
func (h *Hub) NotifyUser(userID uuid.UUID, event string, payload any) {
	data, ok := h.encodeEvent(event, payload)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		h.deliver(c, event, data)
	}
}

// NotifyGroup queues an event for every session opened on groupID.
func (h *Hub) NotifyGroup(groupID uuid.UUID, event string, payload any) {
	data, ok := h.encodeEvent(event, payload)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for c := range set {
			if c.groupID == groupID {
				h.deliver(c, event, data)
			}
		}
	}
}

func (h *Hub) encodeEvent(event string, payload any) ([]byte, bool) {
	data, err := encode(event, payload)
	if err != nil {
		h.logger.Error("failed to encode live event", "event", event, "error", err.Error())
		return nil, false
	}
	return data, true
}

// deliver needs c.send open: callers hold h.mu or run before unregister(c).
func (h *Hub) deliver(c *client, event string, data []byte) {
	select {
	case c.send <- data:
	default:
		h.logger.Warn("live session buffer full, event dropped", "session_id", c.id, "event", event)
	}
}

// Sessions reports how many sessions userID has open.
func (h *Hub) Sessions(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Shutdown drops every connection; each session then cleans up on its own.
func (h *Hub) Shutdown() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for c := range set {
			_ = c.conn.Close()
		}
	}
}

func encode(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: event, Data: data})
}
