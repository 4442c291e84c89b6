// Package ws pushes match refresh events to connected dashboards.
package ws

import (
	"context"
	"sync/atomic"

	"hiring-intel/internal/pkg/logger"

	"go.uber.org/zap"
)

// Hub fans broadcast messages out to every connected client. The client set
// is owned by the Run goroutine; clients whose send buffer is full are
// dropped.
type Hub struct {
	clients    map[*Client]struct{}
	connected  atomic.Int64
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		logger:     logger.OrNop(log).Named("ws"),
	}
}

// Run serves the hub until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for c := range h.clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			if c == nil {
				continue
			}
			h.clients[c] = struct{}{}
			h.connected.Add(1)
			h.logger.Debug("client connected", zap.Int("clients", len(h.clients)))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Debug("client disconnected", zap.Int("clients", len(h.clients)))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.drop(c)
					h.logger.Debug("slow client dropped")
				}
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	h.connected.Add(-1)
}

func (h *Hub) Register(c *Client) {
	if h != nil {
		h.register <- c
	}
}

func (h *Hub) Unregister(c *Client) {
	if h != nil {
		h.unregister <- c
	}
}

// Broadcast never blocks; a message is dropped when the queue is full.
func (h *Hub) Broadcast(msg []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("broadcast dropped", zap.String("reason", "queue_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	return int(h.connected.Load())
}
