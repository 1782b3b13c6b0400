package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"SoundX/logger"
)

// PlayerMessageType tags a fan-out message.
type PlayerMessageType string

const (
	MsgPlayerUpdate PlayerMessageType = "player:update" // now-playing state changed
	MsgLyricUpdate  PlayerMessageType = "lyric:update"  // active lyric line changed
	MsgPing         PlayerMessageType = "ping"
	MsgPong         PlayerMessageType = "pong"
)

// PlayerMessage is the wire envelope for player state fan-out.
type PlayerMessage struct {
	Type      PlayerMessageType `json:"type"`
	Data      json.RawMessage   `json:"data,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// playerClient is one connected listener (tray window, mini player, remote).
type playerClient struct {
	hub  *PlayerHub
	conn *websocket.Conn
	send chan []byte
}

// PlayerHub broadcasts player state to every connected shell surface.
// One group, no identity: whoever is connected hears everything.
type PlayerHub struct {
	clients    map[*playerClient]bool
	register   chan *playerClient
	unregister chan *playerClient
	broadcast  chan []byte
	done       chan struct{}
}

func NewPlayerHub() *PlayerHub {
	return &PlayerHub{
		clients:    make(map[*playerClient]bool),
		register:   make(chan *playerClient),
		unregister: make(chan *playerClient),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// Run is the hub main loop. All map mutation happens here.
func (h *PlayerHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			logger.Debug("player listener connected", logger.Int("listeners", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Listener cannot keep up, drop it.
					delete(h.clients, client)
					close(client.send)
				}
			}

		case <-h.done:
			for client := range h.clients {
				close(client.send)
			}
			h.clients = make(map[*playerClient]bool)
			return
		}
	}
}

// Stop shuts the hub down.
func (h *PlayerHub) Stop() {
	close(h.done)
}

// Publish stamps and broadcasts a message to all listeners.
func (h *PlayerHub) Publish(msg *PlayerMessage) error {
	msg.Timestamp = time.Now().UnixMilli()
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- data:
	default:
		logger.Warn("player broadcast buffer full, dropping message",
			logger.String("type", string(msg.Type)))
	}
	return nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The shell only listens on loopback; the UI process is the sole client.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PlayerWSHandler upgrades a connection and attaches it to the hub.
func (h *Handler) PlayerWSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", logger.ErrorField(err))
		return
	}

	client := &playerClient{hub: h.hub, conn: conn, send: make(chan []byte, 64)}
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection. Listeners only send pings; everything else
// is ignored.
func (c *playerClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("player websocket read error", logger.ErrorField(err))
			}
			return
		}

		var msg PlayerMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		if msg.Type == MsgPing {
			pong := &PlayerMessage{Type: MsgPong, Timestamp: time.Now().UnixMilli()}
			if data, err := json.Marshal(pong); err == nil {
				select {
				case c.send <- data:
				default:
				}
			}
		}
	}
}

func (c *playerClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
