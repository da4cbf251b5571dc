package realtime

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio-backend-go/internal/metrics"
)

// Event is the JSON envelope exchanged over the websocket.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Client-emitted event names and the server-emitted broadcast.
const (
	EventJoinRoom        = "join-room"
	EventNewMessage      = "new-message"
	EventMessageReceived = "message-received"
)

// JoinRoomPayload is the payload of a join-room event.
type JoinRoomPayload struct {
	RoomID   string `json:"roomId"`
	UserID   string `json:"userId"`
	UserRole string `json:"userRole"`
}

// NewMessagePayload is the payload of a new-message event. The message body
// is relayed verbatim.
type NewMessagePayload struct {
	RoomID  string          `json:"roomId"`
	Message json.RawMessage `json:"message"`
}

// ReceivedPayload is the payload broadcast to room members, stamped with a
// server timestamp.
type ReceivedPayload struct {
	RoomID    string          `json:"roomId"`
	Message   json.RawMessage `json:"message"`
	Timestamp string          `json:"timestamp"`
}

type joinRequest struct {
	client  *Client
	payload JoinRoomPayload
}

type broadcastRequest struct {
	sender  *Client
	payload NewMessagePayload
}

// Hub owns the room membership map. All state changes go through its run
// loop, so no lock is needed.
type Hub struct {
	metrics *metrics.Metrics

	register   chan *Client
	unregister chan *Client
	join       chan joinRequest
	broadcast  chan broadcastRequest
	stop       chan struct{}

	rooms map[string]map[*Client]bool
}

// NewHub creates a hub. Run must be started on its own goroutine.
func NewHub(m *metrics.Metrics) *Hub {
	return &Hub{
		metrics:    m,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan joinRequest),
		broadcast:  make(chan broadcastRequest),
		stop:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// Run processes hub events until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.metrics.ActiveConnections.Inc()
			logrus.Infof("Session %s connected", client.id)
		case client := <-h.unregister:
			h.removeClient(client)
		case req := <-h.join:
			h.joinRoom(req)
		case req := <-h.broadcast:
			h.relay(req)
		case <-h.stop:
			for room := range h.rooms {
				for client := range h.rooms[room] {
					close(client.send)
				}
			}
			h.rooms = make(map[string]map[*Client]bool)
			return
		}
	}
}

// Stop shuts the hub down and disconnects all sessions.
func (h *Hub) Stop() {
	close(h.stop)
}

// roomFor derives the room a session may join. The client role is confined
// to a room keyed by its own identity; any other role joins the
// caller-supplied room with no server-side authorization check.
func roomFor(p JoinRoomPayload) string {
	if p.UserRole == "client" {
		return "client-" + p.UserID
	}
	return p.RoomID
}

func (h *Hub) joinRoom(req joinRequest) {
	room := roomFor(req.payload)
	if room == "" {
		logrus.Warnf("Session %s requested an empty room, ignoring", req.client.id)
		return
	}

	if req.client.room != "" {
		h.leaveRoom(req.client)
	}

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][req.client] = true
	req.client.room = room

	logrus.Infof("Session %s (role %s) joined room %s", req.client.id, req.payload.UserRole, room)
}

func (h *Hub) relay(req broadcastRequest) {
	members := h.rooms[req.payload.RoomID]
	if len(members) == 0 {
		return
	}

	payload, err := json.Marshal(ReceivedPayload{
		RoomID:    req.payload.RoomID,
		Message:   req.payload.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logrus.Errorf("Failed to marshal relay payload: %v", err)
		return
	}
	frame, err := json.Marshal(Event{Event: EventMessageReceived, Data: payload})
	if err != nil {
		logrus.Errorf("Failed to marshal relay event: %v", err)
		return
	}

	for client := range members {
		if client == req.sender {
			continue
		}
		select {
		case client.send <- frame:
		default:
			// Slow consumer, drop the session.
			h.removeClient(client)
		}
	}

	h.metrics.RelayedMessages.Inc()
}

func (h *Hub) leaveRoom(client *Client) {
	members := h.rooms[client.room]
	if members != nil && members[client] {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, client.room)
		}
	}
	client.room = ""
}

func (h *Hub) removeClient(client *Client) {
	if client.room != "" {
		h.leaveRoom(client)
	}
	if !client.closed {
		client.closed = true
		close(client.send)
		h.metrics.ActiveConnections.Dec()
		logrus.Infof("Session %s disconnected", client.id)
	}
}
