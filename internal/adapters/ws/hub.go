// Package ws pushes game snapshots to connected browsers so every open
// page sees guesses and reveals the moment they land.
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/highOnBits/time-guess/pkg/logger"
	"github.com/highOnBits/time-guess/pkg/metrics"
)

// Message types sent to clients.
const (
	MessageTypeSnapshot = "snapshot"
	MessageTypePong     = "pong"
	MessageTypeError    = "error"
)

// Message is the envelope for every frame sent to clients.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub maintains the set of connected clients and fans snapshots out to
// them. There is one hub per process and one logical channel: the game.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	sendBuffer int

	log logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.RWMutex
}

// Option applies a configuration option to the Hub.
type Option func(*Hub)

// WithSendBuffer bounds each client's outbound queue. A slow client whose
// queue fills up misses frames instead of stalling the hub.
func WithSendBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}

// NewHub creates a hub. Call Run on its own goroutine.
func NewHub(log logger.Logger, opts ...Option) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		sendBuffer: 8,
		log:        log,
		ctx:        ctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run processes registration and broadcast events until Stop.
func (h *Hub) Run() {
	h.log.Info(h.ctx, "websocket hub started")
	for {
		select {
		case <-h.ctx.Done():
			h.log.Info(context.Background(), "websocket hub stopping")
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			metrics.UpdateWSClients(count)
			h.log.Debug(h.ctx, "client registered", logger.String("client_id", client.id))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			metrics.UpdateWSClients(count)
			h.log.Debug(h.ctx, "client unregistered", logger.String("client_id", client.id))

		case data := <-h.broadcast:
			h.fanOut(data)
		}
	}
}

// Stop shuts the hub down and disconnects every client.
func (h *Hub) Stop() {
	h.cancel()
}

// Broadcast queues a snapshot frame for every connected client.
func (h *Hub) Broadcast(data interface{}) {
	msg := Message{
		Type:      MessageTypeSnapshot,
		Data:      data,
		Timestamp: time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		h.log.Error(h.ctx, "failed to marshal snapshot", logger.Error(err))
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn(h.ctx, "broadcast queue full, dropping snapshot")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) fanOut(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	metrics.RecordWSBroadcast()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow consumer; it will catch up on the next snapshot.
			h.log.Warn(h.ctx, "client buffer full, skipping", logger.String("client_id", client.id))
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	metrics.UpdateWSClients(0)
}
