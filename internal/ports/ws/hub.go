package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sirupsen/logrus"

	"tienlen-server/internal/app"
)

const (
	defaultWriteTimeout = 3 * time.Second
	outboxSize          = 64
)

// ServerMessage is the envelope of everything the server writes to a socket.
type ServerMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

// client is one live socket. Writes go through out so a slow reader never stalls
// the room that produced the event.
type client struct {
	userID  string
	matchID string
	conn    *websocket.Conn
	out    chan ServerMessage
	done   chan struct{}
	once   sync.Once
}

func newClient(userID, matchID string, conn *websocket.Conn) *client {
	return &client{
		userID:  userID,
		matchID: matchID,
		conn:    conn,
		out:     make(chan ServerMessage, outboxSize),
		done:    make(chan struct{}),
	}
}

// send queues msg without blocking; it reports false when the outbox is full or closed.
func (c *client) send(msg ServerMessage) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.out <- msg:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.once.Do(func() { close(c.done) })
}

// Hub maps user ids to their socket and implements app.Notifier.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client

	log          logrus.FieldLogger
	writeTimeout time.Duration
}

// NewHub returns an empty hub.
func NewHub(logger logrus.FieldLogger) *Hub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Hub{
		clients:      make(map[string]*client),
		log:          logger,
		writeTimeout: defaultWriteTimeout,
	}
}

var _ app.Notifier = (*Hub)(nil)

// Notify queues ev for every connected recipient. Recipients without a socket are skipped.
func (h *Hub) Notify(_ context.Context, recipients []string, ev app.Event) {
	msg := ServerMessage{Type: string(ev.Kind), Payload: ev.Payload}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range recipients {
		c, ok := h.clients[id]
		if !ok {
			continue
		}
		if !c.send(msg) {
			h.log.WithFields(logrus.Fields{"user_id": id, "event": ev.Kind}).Warn("dropping event for slow client")
		}
	}
}

// Connected reports whether userID has a live socket.
func (h *Hub) Connected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// attach registers c, displacing any previous socket of the same user.
func (h *Hub) attach(c *client) {
	h.mu.Lock()
	prev := h.clients[c.userID]
	h.clients[c.userID] = c
	h.mu.Unlock()

	if prev != nil {
		prev.close()
		if prev.conn != nil {
			prev.conn.Close(websocket.StatusPolicyViolation, "replaced by a newer connection")
		}
	}
}

// detach removes c if it is still the user's current socket. It reports whether
// c's seat should be released: only a newer socket in the same match takes it over.
func (h *Hub) detach(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.close()
	cur, ok := h.clients[c.userID]
	if cur == c {
		delete(h.clients, c.userID)
		return true
	}
	return !ok || cur.matchID != c.matchID
}

// writePump drains the outbox to the socket until the client closes or ctx ends.
func (h *Hub) writePump(ctx context.Context, c *client) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case msg := <-c.out:
			writeCtx, cancel := context.WithTimeout(ctx, h.writeTimeout)
			err := wsjson.Write(writeCtx, c.conn, msg)
			cancel()
			if err != nil {
				h.log.WithFields(logrus.Fields{"user_id": c.userID, "error": err}).Warn("failed to write message")
				return
			}
		}
	}
}
