package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Envelope is the wire format for every realtime event, client and server.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// client wraps a connection with a write lock; the hub goroutine and the
// client's own read loop both write to it.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(event string, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(outEnvelope{Event: event, Data: data})
}

// Subscription joins one client to one room. A client may hold several.
type Subscription struct {
	Client *client
	Room   string
}

type BroadcastMessage struct {
	Room    string
	Message *entity.Message
}

// ChatHub keeps the room membership and fans persisted messages out to every
// connection joined to the room. Membership is process-local: it is lost on
// restart and clients must rejoin.
type ChatHub struct {
	rooms      map[string]map[*client]bool
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan *client
	service    *services.ChatService
	log        zerolog.Logger

	// per-room locks keep persist and broadcast-enqueue an atomic pair,
	// so delivery order matches creation order within a room
	roomLockMu sync.Mutex
	roomLocks  map[string]*sync.Mutex
}

func NewChatHub(service *services.ChatService, log zerolog.Logger) *ChatHub {
	return &ChatHub{
		rooms:      make(map[string]map[*client]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan *client),
		service:    service,
		log:        log,
		roomLocks:  make(map[string]*sync.Mutex),
	}
}

func (h *ChatHub) roomLock(room string) *sync.Mutex {
	h.roomLockMu.Lock()
	defer h.roomLockMu.Unlock()
	mu, ok := h.roomLocks[room]
	if !ok {
		mu = &sync.Mutex{}
		h.roomLocks[room] = mu
	}
	return mu
}

func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			if h.rooms[sub.Room] == nil {
				h.rooms[sub.Room] = make(map[*client]bool)
			}
			h.rooms[sub.Room][sub.Client] = true

		case cl := <-h.unregister:
			for room, members := range h.rooms {
				if members[cl] {
					delete(members, cl)
					if len(members) == 0 {
						delete(h.rooms, room)
					}
				}
			}
			cl.conn.Close()

		case msg := <-h.broadcast:
			for cl := range h.rooms[msg.Room] {
				if err := cl.send("receive-message", msg.Message); err != nil {
					h.log.Warn().Err(err).Msg("ws write failed, dropping client")
					cl.conn.Close()
					delete(h.rooms[msg.Room], cl)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws — authenticated by WSAuthMiddleware
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	cl := &client{conn: conn}
	go h.listen(cl)
}

type joinPayload struct {
	Room string `json:"room"`
}

type sendPayload struct {
	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
	Message  string `json:"message"`
	Room     string `json:"room"`
}

func (h *ChatHub) listen(cl *client) {
	defer func() { h.unregister <- cl }()

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			h.sendError(cl, "invalid payload")
			continue
		}

		switch env.Event {
		case "join-room":
			h.handleJoin(cl, env.Data)
		case "send-message":
			h.handleSend(cl, env.Data)
		default:
			h.sendError(cl, "unknown event")
		}
	}
}

func (h *ChatHub) handleJoin(cl *client, data json.RawMessage) {
	var payload joinPayload
	// a bare join means the default room
	_ = json.Unmarshal(data, &payload)
	room := services.NormalizeRoom(payload.Room)

	h.register <- Subscription{Client: cl, Room: room}

	history, err := h.service.History(room, services.DefaultHistoryLimit)
	if err != nil {
		h.log.Error().Err(err).Str("room", room).Msg("history fetch failed")
		h.sendError(cl, "could not load history")
		return
	}
	if err := cl.send("message-history", history); err != nil {
		h.log.Warn().Err(err).Msg("ws write failed")
	}
}

func (h *ChatHub) handleSend(cl *client, data json.RawMessage) {
	var payload sendPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.sendError(cl, "invalid payload")
		return
	}

	// persist and enqueue under the room lock; two concurrent senders may
	// not persist A,B but enqueue B,A
	mu := h.roomLock(services.NormalizeRoom(payload.Room))
	mu.Lock()
	msg, err := h.service.SendMessage(payload.UserID, payload.UserName, payload.Message, payload.Room)
	if err != nil {
		mu.Unlock()
		if errs.KindOf(err) == errs.KindValidation {
			h.sendError(cl, err.Error())
		} else {
			h.log.Error().Err(err).Msg("message persist failed")
			h.sendError(cl, "could not send message")
		}
		return
	}

	h.broadcast <- BroadcastMessage{Room: msg.Room, Message: msg}
	mu.Unlock()
}

func (h *ChatHub) sendError(cl *client, msg string) {
	if err := cl.send("error", gin.H{"message": msg}); err != nil {
		h.log.Warn().Err(err).Msg("ws write failed")
	}
}
