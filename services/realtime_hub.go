package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient wraps one websocket connection. Gorilla conns support at most one
// concurrent writer, so every write goes through Send, which serializes the
// hub broadcasts and the controller's keepalive pings.
type WSClient struct {
	UserID string

	writeMu sync.Mutex
	conn    *websocket.Conn
}

func NewWSClient(userID string, conn *websocket.Conn) *WSClient {
	return &WSClient{UserID: userID, conn: conn}
}

func (c *WSClient) Send(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *WSClient) Ping() error {
	return c.Send(websocket.PingMessage, nil)
}

// RealtimeHub fans session tick payloads out to the owner's websocket
// clients.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *RealtimeHub) Broadcast(userID string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Send(websocket.TextMessage, msg)
	}
}
