// Package notify broadcasts library changes to connected websocket clients.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
)

// Event types sent over the wire.
const (
	EventLibraryUpdated    = "library_updated"
	EventCollectionAdded   = "collection_added"
	EventCollectionRemoved = "collection_removed"
	EventChaptersAdded     = "chapters_added"
	EventChaptersRemoved   = "chapters_removed"
)

// Event is one library change pushed to subscribers.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	Collection string    `json:"collection"`
	Chapters   []string  `json:"chapters,omitempty"`
}

// Hub tracks websocket subscribers and fans events out to them.
type Hub struct {
	logger ports.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty Hub.
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Add registers a websocket client.
func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

// Remove unregisters and closes a websocket client.
func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish implements ports.Notifier, turning a diff into one event per
// change and broadcasting each.
func (h *Hub) Publish(diff domain.Diff) {
	if diff.Empty() {
		return
	}

	now := time.Now().UTC()

	for _, id := range diff.AddedCollections {
		h.BroadcastJSON(newEvent(EventCollectionAdded, id, nil, now))
	}
	for _, id := range diff.RemovedCollections {
		h.BroadcastJSON(newEvent(EventCollectionRemoved, id, nil, now))
	}
	for id, ch := range diff.Chapters {
		if len(ch.Added) > 0 {
			h.BroadcastJSON(newEvent(EventChaptersAdded, id, ch.Added, now))
		}
		if len(ch.Removed) > 0 {
			h.BroadcastJSON(newEvent(EventChaptersRemoved, id, ch.Removed, now))
		}
	}

	// Trailing summary so thin clients can refetch without tracking the
	// individual changes.
	h.BroadcastJSON(newEvent(EventLibraryUpdated, "", nil, now))
}

func newEvent(kind, collection string, chapters []string, at time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       kind,
		Timestamp:  at,
		Collection: collection,
		Chapters:   chapters,
	}
}

// BroadcastJSON sends v to every connected client, dropping clients whose
// writes fail.
func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
			if h.logger != nil {
				h.logger.Warn("dropped slow event subscriber")
			}
		}
	}
}
