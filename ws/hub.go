package ws

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	minSendBufferSize = 1
)

var log = logger.GetOrCreate("staking-gateway-go/ws")

// Event is the envelope every websocket message is wrapped in
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// ArgsHub is the argument DTO for the NewHub function
type ArgsHub struct {
	SendBufferSize int
}

type hub struct {
	mut            sync.RWMutex
	clients        map[*client]struct{}
	sendBufferSize int
	upgrader       websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates the fan-out component pushing platform events (price updates,
// delegation confirmations) to the connected websocket clients. Slow clients
// get dropped instead of blocking the broadcast.
func NewHub(args ArgsHub) (*hub, error) {
	if args.SendBufferSize < minSendBufferSize {
		return nil, fmt.Errorf("%w, minimum %d, got %d", errInvalidSendBufferSize, minSendBufferSize, args.SendBufferSize)
	}

	return &hub{
		clients:        make(map[*client]struct{}),
		sendBufferSize: args.SendBufferSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// Broadcast marshals the event and queues it on every connected client
func (h *hub) Broadcast(eventType string, payload interface{}) {
	event := &Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}

	message, err := json.Marshal(event)
	if err != nil {
		log.Error("cannot marshal websocket event", "type", eventType, "error", err)
		return
	}

	h.mut.RLock()
	slowClients := make([]*client, 0)
	for c := range h.clients {
		select {
		case c.send <- message:
		default:
			slowClients = append(slowClients, c)
		}
	}
	h.mut.RUnlock()

	for _, c := range slowClients {
		log.Debug("dropping slow websocket client")
		h.removeClient(c)
	}
}

// NumClients returns the number of connected clients
func (h *hub) NumClients() int {
	h.mut.RLock()
	defer h.mut.RUnlock()

	return len(h.clients)
}

// ServeHTTP upgrades the request and registers the new client
func (h *hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, h.sendBufferSize),
	}

	h.mut.Lock()
	h.clients[c] = struct{}{}
	h.mut.Unlock()

	log.Debug("websocket client connected", "remoteAddr", conn.RemoteAddr().String())

	go h.writePump(c)
	go h.readPump(c)
}

func (h *hub) readPump(c *client) {
	defer h.removeClient(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		// inbound payloads are ignored, the read loop only reacts to close frames
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("websocket read error", "error", err)
			}
			return
		}
	}
}

func (h *hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.removeClient(c)
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			err := c.conn.WriteMessage(websocket.TextMessage, message)
			if err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			if err != nil {
				return
			}
		}
	}
}

func (h *hub) removeClient(c *client) {
	h.mut.Lock()
	_, found := h.clients[c]
	if found {
		delete(h.clients, c)
	}
	h.mut.Unlock()

	if found {
		_ = c.conn.Close()
	}
}

// Close disconnects all the clients
func (h *hub) Close() error {
	h.mut.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*client]struct{})
	h.mut.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (h *hub) IsInterfaceNil() bool {
	return h == nil
}
