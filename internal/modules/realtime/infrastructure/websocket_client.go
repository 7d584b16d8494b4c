package infrastructure

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mesaYaApi/internal/modules/realtime/domain"
)

const (
	pingInterval  = 30 * time.Second
	readDeadline  = 60 * time.Second
	writeDeadline = 5 * time.Second
	maxFrameSize  = 1 << 16
)

// Client is one websocket connection with its identity and scope metadata.
type Client struct {
	hub          *Hub
	conn         *websocket.Conn
	send         chan []byte
	done         chan struct{}
	userID       string
	sessionID    string
	restaurantID string
	entity       string
	subscribed   map[string]struct{}
	closeOnce    sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, sessionID, restaurantID, entity string, buf int) *Client {
	if buf <= 0 {
		buf = 8
	}
	return &Client{
		hub:          hub,
		conn:         conn,
		send:         make(chan []byte, buf),
		done:         make(chan struct{}),
		userID:       userID,
		sessionID:    sessionID,
		restaurantID: strings.TrimSpace(restaurantID),
		entity:       strings.TrimSpace(entity),
		subscribed:   make(map[string]struct{}),
	}
}

func (c *Client) key() string {
	parts := []string{c.userID, c.sessionID}
	if c.restaurantID != "" {
		parts = append(parts, c.restaurantID)
	}
	return strings.Join(parts, ":")
}

// close signals the pumps to stop. The send channel is never closed so a
// broadcast racing a detach cannot panic on a closed channel.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// SendMessage queues a message for delivery, detaching the client when its
// buffer is full.
func (c *Client) SendMessage(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal error", slog.Any("error", err))
		return
	}
	select {
	case <-c.done:
	case c.send <- data:
	default:
		slog.Warn("websocket send buffer full", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID))
		go c.hub.detachClient(c)
	}
}

func (c *Client) WritePump() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
				slog.Warn("websocket ping error", slog.Any("error", err))
				return
			}
		}
	}
}

// ReadPump drains inbound frames so pongs and close frames are processed; the
// feed itself is one-way.
func (c *Client) ReadPump() {
	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	})
	defer c.hub.detachClient(c)
	for {
		_ = c.conn.SetReadDeadline(time.Now().Add(readDeadline))
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID), slog.Any("error", err))
			}
			return
		}
	}
}
