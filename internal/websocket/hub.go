package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"sentinel-kyc-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans activity feed entries out to every connected dashboard. The feed
// is broadcast only, clients never address each other.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Identifies this process on the mirror channel so it can skip
	// its own publishes; local delivery already happened in Broadcast.
	instanceId string

	// Dedicated Logger
	logger logger.ILogger
}

const redisActivityChannel = "activity_feed"

// mirrorEnvelope wraps entries on the Redis channel with their origin.
type mirrorEnvelope struct {
	Origin  string          `json:"origin"`
	Payload json.RawMessage `json:"payload"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"clients": total})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"clients": total})
		}
	}
}

// Broadcast sends an activity entry to ALL connected clients and mirrors it
// to Redis so other instances can deliver it to theirs.
func (h *Hub) Broadcast(entry interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "activity",
		"data": entry,
	})
	if err != nil {
		h.logger.Warn("Hub", "Failed to marshal activity entry", map[string]interface{}{"error": err.Error()})
		return
	}

	h.broadcastLocal(data)

	if h.rdb != nil {
		wrapped, err := json.Marshal(mirrorEnvelope{Origin: h.instanceId, Payload: data})
		if err != nil {
			h.logger.Warn("Hub", "Failed to wrap mirror message", map[string]interface{}{"error": err.Error()})
			return
		}
		h.rdb.Publish(context.Background(), redisActivityChannel, wrapped)
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer, drop the connection
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisActivityChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		h.handleMirror([]byte(msg.Payload))
	}
}

// handleMirror delivers a message from the Redis channel to local clients,
// dropping messages this instance published itself.
func (h *Hub) handleMirror(raw []byte) {
	var env mirrorEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Origin == "" {
		h.logger.Warn("Hub", "Invalid mirror message", map[string]interface{}{"channel": redisActivityChannel})
		return
	}
	if env.Origin == h.instanceId {
		return
	}
	h.broadcastLocal(env.Payload)
}
