package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/jest/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	sendBuffer = 256
)

// feedMessage is an encoded event on its way to the spectators
type feedMessage struct {
	data    []byte
	newGame bool
}

// Hub fans the events of every game out to the connected spectators.
// A spectator joining late is sent what it missed of the current game first,
// up to historyLimit events.
type Hub struct {
	clients      map[*client]bool
	history      [][]byte
	historyLimit int
	broadcast    chan feedMessage
	register     chan *client
	unregister   chan *client
	done         chan struct{}
	log          *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Hub{
		clients:      map[*client]bool{},
		history:      [][]byte{},
		historyLimit: sendBuffer,
		broadcast:    make(chan feedMessage, sendBuffer),
		register:     make(chan *client),
		unregister:   make(chan *client),
		done:         make(chan struct{}),
		log:          logger,
	}
}

// Observe publishes a game event to the spectators. It never blocks the game:
// when the hub falls behind the event is dropped.
func (h *Hub) Observe(e protocol.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		h.log.Error("could not encode event", "kind", e.Kind.String(), "error", err)
		return
	}

	select {
	case h.broadcast <- feedMessage{data: data, newGame: e.Kind == protocol.GameStarted}:
	default:
		h.log.Warn("spectator feed is behind, dropping event", "kind", e.Kind.String())
	}
}

// Listen runs the hub until Close is called
func (h *Hub) Listen() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			for _, msg := range h.history {
				h.send(c, msg)
			}
			h.log.Debug("spectator joined", "spectators", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.log.Debug("spectator left", "spectators", len(h.clients))
			}

		case msg := <-h.broadcast:
			h.remember(msg)
			for c := range h.clients {
				h.send(c, msg.data)
			}

		case <-h.done:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		}
	}
}

// remember keeps the current game's latest events for late spectators
func (h *Hub) remember(msg feedMessage) {
	if msg.newGame {
		h.history = [][]byte{}
	}
	h.history = append(h.history, msg.data)
	if len(h.history) > h.historyLimit {
		h.history = h.history[len(h.history)-h.historyLimit:]
	}
}

// send drops a client that can't keep up
func (h *Hub) send(c *client, msg []byte) {
	if !h.clients[c] {
		return
	}
	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
		h.log.Warn("dropping slow spectator")
	}
}

func (h *Hub) Close() {
	close(h.done)
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
