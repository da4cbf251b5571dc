package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 16
)

// Client is one connected websocket session.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// room and closed are owned by the hub goroutine.
	room   string
	closed bool
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// ServeWS upgrades an HTTP request to a websocket session and starts its
// pumps. allowedOrigin restricts the handshake to the configured frontend;
// requests without an Origin header are accepted.
func ServeWS(hub *Hub, allowedOrigin string, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == allowedOrigin
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Errorf("Websocket upgrade failed: %v", err)
		return
	}

	client := newClient(hub, conn)
	hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump reads event frames from the socket and routes them to the hub.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.Warnf("Session %s read error: %v", c.id, err)
			}
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Warnf("Session %s sent a malformed frame, ignoring", c.id)
			continue
		}

		switch event.Event {
		case EventJoinRoom:
			var payload JoinRoomPayload
			if err := json.Unmarshal(event.Data, &payload); err != nil {
				logrus.Warnf("Session %s sent a malformed join-room payload, ignoring", c.id)
				continue
			}
			c.hub.join <- joinRequest{client: c, payload: payload}
		case EventNewMessage:
			var payload NewMessagePayload
			if err := json.Unmarshal(event.Data, &payload); err != nil {
				logrus.Warnf("Session %s sent a malformed new-message payload, ignoring", c.id)
				continue
			}
			c.hub.broadcast <- broadcastRequest{sender: c, payload: payload}
		default:
			logrus.Warnf("Session %s sent unknown event %q, ignoring", c.id, event.Event)
		}
	}
}

// writePump writes queued frames and keepalive pings to the socket.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
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
