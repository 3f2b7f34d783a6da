package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"tienlen-server/internal/app"
	"tienlen-server/internal/domain"
	"tienlen-server/internal/middleware"
)

// Client message types.
const (
	MsgJoin  = "join"
	MsgReady = "ready"
	MsgStart = "start"
	MsgPlay  = "play"
	MsgPass  = "pass"
	MsgLeave = "leave"
	MsgPing  = "ping"
)

// ClientMessage is one inbound frame.
type ClientMessage struct {
	Type  string        `json:"type"`
	Name  string        `json:"name,omitempty"`
	Cards []domain.Card `json:"cards,omitempty"`
}

// Rooms is the slice of the match registry the socket handler drives.
type Rooms interface {
	Get(matchID string) (*app.Room, error)
	Join(ctx context.Context, matchID, userID, name string) error
	SetReady(ctx context.Context, matchID, userID string) error
	Start(ctx context.Context, matchID, userID string) error
	SubmitPlay(ctx context.Context, matchID, userID string, cards []domain.Card) error
	Pass(ctx context.Context, matchID, userID string) error
	Leave(ctx context.Context, matchID, userID string) error
}

// HandlerOptions configures the socket endpoint.
type HandlerOptions struct {
	OriginPatterns []string
	// IdleTimeout closes a socket that sends nothing for this long; clients ping to stay alive.
	IdleTimeout time.Duration
}

// Handler upgrades GET /ws/{matchID} to a websocket, seats the caller and routes
// their messages to the room until the socket closes. Closing the socket leaves the room.
func Handler(logger logrus.FieldLogger, auth *Authenticator, rooms Rooms, hub *Hub, opts HandlerOptions) http.HandlerFunc {
	idle := opts.IdleTimeout
	if idle <= 0 {
		idle = 2 * time.Minute
	}

	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")
		if matchID == "" {
			http.Error(w, "missing match id", http.StatusBadRequest)
			return
		}

		ident, err := auth.Authenticate(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if _, err := rooms.Get(matchID); err != nil {
			http.Error(w, "match not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: opts.OriginPatterns})
		if err != nil {
			logger.WithFields(logrus.Fields{"match_id": matchID, "error": err}).Warn("websocket accept failed")
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		log := logger.WithFields(logrus.Fields{"match_id": matchID, "user_id": ident.UserID})
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		c := newClient(ident.UserID, matchID, conn)
		hub.attach(c)
		go hub.writePump(ctx, c)

		name := ident.Name
		if name == "" {
			name = ident.UserID
		}
		if err := rooms.Join(ctx, matchID, ident.UserID, name); err != nil {
			log.WithField("error", err).Info("join refused")
			hub.detach(c)
			conn.Close(websocket.StatusPolicyViolation, app.RejectReason(err))
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, matchID, ident.UserID)

		readErr := readLoop(ctx, conn, c, rooms, matchID, ident.UserID, idle, log)

		// A socket displaced by a reconnect to the same match keeps the seat.
		if hub.detach(c) {
			if err := rooms.Leave(context.WithoutCancel(ctx), matchID, ident.UserID); err != nil && !errors.Is(err, app.ErrUnknownMatch) && !errors.Is(err, app.ErrUnknownPlayer) {
				log.WithField("error", err).Warn("leave on disconnect failed")
			}
		}
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, matchID, ident.UserID, readErr)
		conn.Close(websocket.StatusNormalClosure, "bye")
	}
}

// readLoop routes inbound frames until the socket errors, the client leaves or ctx ends.
// It returns the error that ended the loop, nil for a clean close or an explicit leave.
func readLoop(ctx context.Context, conn *websocket.Conn, c *client, rooms Rooms, matchID, userID string, idle time.Duration, log logrus.FieldLogger) error {
	for {
		readCtx, cancel := context.WithTimeout(ctx, idle)
		msgType, data, err := conn.Read(readCtx)
		cancel()
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if msgType != websocket.MessageText {
			c.send(ServerMessage{Type: "error", Error: "text frames only"})
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.send(ServerMessage{Type: "error", Error: "bad json"})
			continue
		}

		log.WithField("type", msg.Type).Debug("received message")

		// Rejections reach the client as play_rejected events through the hub.
		var cmdErr error
		switch msg.Type {
		case MsgJoin:
			cmdErr = rooms.Join(ctx, matchID, userID, msg.Name)
		case MsgReady:
			cmdErr = rooms.SetReady(ctx, matchID, userID)
		case MsgStart:
			cmdErr = rooms.Start(ctx, matchID, userID)
		case MsgPlay:
			cmdErr = rooms.SubmitPlay(ctx, matchID, userID, msg.Cards)
		case MsgPass:
			cmdErr = rooms.Pass(ctx, matchID, userID)
		case MsgLeave:
			return nil
		case MsgPing:
			c.send(ServerMessage{Type: "pong"})
		default:
			c.send(ServerMessage{Type: "error", Error: fmt.Sprintf("unknown message type: %s", msg.Type)})
		}
		if cmdErr != nil {
			log.WithFields(logrus.Fields{"type": msg.Type, "error": cmdErr}).Debug("command rejected")
			if errors.Is(cmdErr, app.ErrUnknownMatch) {
				return cmdErr
			}
		}
	}
}
