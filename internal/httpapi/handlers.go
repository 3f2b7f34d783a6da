package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"tienlen-server/internal/app"
	"tienlen-server/internal/ports/ws"
)

// RoomLister is the registry view the lobby endpoints need.
type RoomLister interface {
	Create() *app.Room
	List() []app.RoomSummary
}

type roomListItem struct {
	ID        string `json:"id"`
	Players   int    `json:"players"`
	MaxSeats  int    `json:"max_seats"`
	Started   bool   `json:"started"`
	Phase     string `json:"phase"`
	CreatedAt string `json:"created_at"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ListRooms returns every live room with its seat count and whether play is under way.
func ListRooms(rooms RoomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := rooms.List()
		out := make([]roomListItem, 0, len(summaries))
		for _, s := range summaries {
			out = append(out, roomListItem{
				ID:        s.ID,
				Players:   len(s.Players),
				MaxSeats:  s.MaxSeats,
				Started:   s.Phase == app.PhasePlaying,
				Phase:     string(s.Phase),
				CreatedAt: s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			})
		}
		writeJSON(w, http.StatusOK, struct {
			Rooms []roomListItem `json:"rooms"`
		}{Rooms: out})
	}
}

// CreateRoom opens an empty room and returns its match id.
func CreateRoom(rooms RoomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := rooms.Create()
		writeJSON(w, http.StatusCreated, struct {
			MatchID string `json:"match_id"`
		}{MatchID: room.ID()})
	}
}

// GuestToken issues a token for a fresh guest identity. An optional JSON body
// {"name": "..."} sets the display name.
func GuestToken(auth *ws.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad json", http.StatusBadRequest)
				return
			}
		}

		userID := uuid.NewString()
		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = "guest-" + userID[:8]
		}
		token, err := auth.IssueToken(userID, name)
		if err != nil {
			http.Error(w, "failed to issue token", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, struct {
			UserID string `json:"user_id"`
			Name   string `json:"name"`
			Token  string `json:"token"`
		}{UserID: userID, Name: name, Token: token})
	}
}
