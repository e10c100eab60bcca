package ws

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type delivery struct {
	userIDs []uuid.UUID
	payload []byte
}

// Hub fans messages out to the live connections of specific users. A user may
// hold several connections; each receives every message addressed to the user.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	// done is closed when Run returns.
	done     chan struct{}
	stopOnce sync.Once
	mutex    sync.RWMutex
	logger   *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		deliver:    make(chan delivery, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger.Named("ws"),
	}
}

// Run serves the hub until ctx is done, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			h.mutex.Unlock()
			h.logger.Debug("client connected", zap.Stringer("user_id", client.userID))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.drop(client)
			h.mutex.Unlock()
			h.logger.Debug("client disconnected", zap.Stringer("user_id", client.userID))

		case d := <-h.deliver:
			h.mutex.Lock()
			sent := 0
			for _, id := range d.userIDs {
				for client := range h.clients[id] {
					select {
					case client.send <- d.payload:
						sent++
					default:
						h.logger.Warn("client too slow, dropping connection", zap.Stringer("user_id", id))
						h.drop(client)
					}
				}
			}
			h.mutex.Unlock()
			h.logger.Debug("delivered", zap.Int("recipients", len(d.userIDs)), zap.Int("connections", sent))
		}
	}
}

// drop requires h.mutex held.
func (h *Hub) drop(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, set := range h.clients {
		for client := range set {
			h.drop(client)
		}
	}
}

// Register hands client to the hub. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	if h == nil {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister returns immediately once the hub has stopped; Run already closed
// every client on its way out.
func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Send queues payload for the given users. It never blocks; when the queue is
// full the message is dropped.
func (h *Hub) Send(userIDs []uuid.UUID, payload []byte) {
	if h == nil || len(userIDs) == 0 {
		return
	}
	select {
	case h.deliver <- delivery{userIDs: userIDs, payload: payload}:
	default:
		h.logger.Warn("delivery dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID])
}
