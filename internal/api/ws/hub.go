package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // game client may be served from anywhere
	},
}

// sendBufferSize bounds the frames queued per connection; a client
// that cannot drain its buffer loses frames rather than stalling the
// game loop behind its socket.
const sendBufferSize = 32

const writeWait = 10 * time.Second

// client is one live websocket connection. All writes go through the
// buffered send channel and a single writer goroutine; gorilla allows
// only one concurrent writer per connection.
type client struct {
	id     string
	conn   *websocket.Conn
	roomID string

	sendCh chan []byte
	done   chan struct{}
}

// enqueue hands a frame to the writer without blocking.
func (c *client) enqueue(frame []byte) bool {
	select {
	case c.sendCh <- frame:
		return true
	default:
		return false
	}
}

func (c *client) writePump() {
	for {
		select {
		case frame := <-c.sendCh:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// Hub tracks live connections and their room membership, and routes
// socket traffic into the game service. It implements room.Broadcaster:
// the core calls JoinRoom while seating a player (before it emits any
// join events) so the new member receives their own roster update.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	rooms   map[string]map[*client]struct{}

	svc GameService
	log zerolog.Logger
}

func NewHub(svc GameService, log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		rooms:   make(map[string]map[*client]struct{}),
		svc:     svc,
		log:     log,
	}
}

// envelope is the socket wire format, both directions.
type envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type joinPayload struct {
	Name string `json:"name"`
}

type chatPayload struct {
	Message string `json:"message"`
}

// HandleWS upgrades the request and runs the connection's read loop.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	cl := &client{
		id:     uuid.NewString(),
		conn:   conn,
		sendCh: make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
	h.mu.Lock()
	h.clients[cl.id] = cl
	h.mu.Unlock()
	go cl.writePump()
	h.log.Info().Str("conn", cl.id).Msg("player connected")

	defer func() {
		roomID := h.drop(cl)
		close(cl.done)
		if roomID != "" {
			h.svc.Leave(cl.id, roomID)
		}
		_ = conn.Close()
		h.log.Info().Str("conn", cl.id).Msg("player disconnected")
	}()

	for {
		var msg envelope
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Action {
		case "joinGame":
			if h.roomOf(cl.id) != "" {
				continue // already seated
			}
			var p joinPayload
			if err := json.Unmarshal(msg.Data, &p); err != nil || p.Name == "" {
				continue
			}
			h.svc.Join(cl.id, p.Name)
		case "rollDice":
			if roomID := h.roomOf(cl.id); roomID != "" {
				h.svc.RollDice(cl.id, roomID)
			}
		case "sendMessage":
			var p chatPayload
			if err := json.Unmarshal(msg.Data, &p); err != nil || p.Message == "" {
				continue
			}
			if roomID := h.roomOf(cl.id); roomID != "" {
				h.svc.SendChat(cl.id, roomID, p.Message)
			}
		default:
			h.log.Debug().Str("action", msg.Action).Msg("unknown socket action")
		}
	}
}

// JoinRoom adds a connection to a room's broadcast group. Called by
// the core while it seats the player.
func (h *Hub) JoinRoom(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cl, ok := h.clients[connID]
	if !ok {
		return
	}
	cl.roomID = roomID
	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*client]struct{})
	}
	h.rooms[roomID][cl] = struct{}{}
}

// roomOf returns the room a connection currently sits in, if any.
func (h *Hub) roomOf(connID string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if cl, ok := h.clients[connID]; ok {
		return cl.roomID
	}
	return ""
}

// drop removes a closed connection and reports the room it was in.
func (h *Hub) drop(cl *client) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, cl.id)
	roomID := cl.roomID
	if set, ok := h.rooms[roomID]; ok {
		delete(set, cl)
		if len(set) == 0 {
			delete(h.rooms, roomID)
		}
	}
	return roomID
}

// Broadcast queues an event for every connection in the room. It never
// blocks on a socket: the frame is marshaled once and handed to each
// client's writer, dropping it for clients whose buffer is full.
func (h *Hub) Broadcast(roomID string, event string, data interface{}) {
	frame, err := json.Marshal(gin.H{"action": event, "data": data})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("broadcast marshal failed")
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomID]))
	for cl := range h.rooms[roomID] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if !cl.enqueue(frame) {
			h.log.Warn().Str("conn", cl.id).Str("event", event).Msg("slow client, frame dropped")
		}
	}
}
