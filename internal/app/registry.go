package app

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tienlen-server/internal/domain"
)

// Registry tracks live rooms by match id. Rooms are dropped once the last
// player leaves.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	opts    RoomOptions
	log     logrus.FieldLogger
	pending sync.WaitGroup
}

// NewRegistry returns an empty registry; every room it creates shares opts.
func NewRegistry(opts RoomOptions) *Registry {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	opts.Logger = log
	return &Registry{
		rooms: make(map[string]*Room),
		opts:  opts,
		log:   log,
	}
}

// Create opens a room under a fresh id.
func (g *Registry) Create() *Room {
	return g.CreateWithID(uuid.NewString())
}

// CreateWithID opens a room under id, or returns the existing one.
func (g *Registry) CreateWithID(id string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	if room, ok := g.rooms[id]; ok {
		return room
	}
	room := newRoom(id, g.opts, &g.pending)
	g.rooms[id] = room
	g.log.WithField("match_id", id).Info("room created")
	return room
}

// Get looks up a room.
func (g *Registry) Get(id string) (*Room, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	room, ok := g.rooms[id]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, ErrUnknownMatch)
	}
	return room, nil
}

// Delete drops a room regardless of who is seated.
func (g *Registry) Delete(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.rooms[id]; ok {
		delete(g.rooms, id)
		g.log.WithField("match_id", id).Info("room closed")
	}
}

// List returns a summary of every room, oldest first.
func (g *Registry) List() []RoomSummary {
	g.mu.RLock()
	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}
	g.mu.RUnlock()

	out := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, room.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Len returns the number of live rooms.
func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

func (g *Registry) Join(ctx context.Context, matchID, userID, name string) error {
	room, err := g.Get(matchID)
	if err != nil {
		return err
	}
	return g.joinRoom(ctx, room, userID, name)
}

// joinRoom seats the player in room, then confirms room is still registered.
// A room closed by a concurrent Leave in between is left again.
func (g *Registry) joinRoom(ctx context.Context, room *Room, userID, name string) error {
	if err := room.Join(ctx, userID, name); err != nil {
		return err
	}

	g.mu.RLock()
	live := g.rooms[room.ID()] == room
	g.mu.RUnlock()
	if live {
		return nil
	}
	if err := room.Leave(context.WithoutCancel(ctx), userID); err != nil {
		g.log.WithFields(logrus.Fields{"match_id": room.ID(), "user_id": userID, "error": err}).Warn("leave closed room failed")
	}
	return fmt.Errorf("join %s: %w", room.ID(), ErrUnknownMatch)
}

func (g *Registry) SetReady(ctx context.Context, matchID, userID string) error {
	room, err := g.Get(matchID)
	if err != nil {
		return err
	}
	return room.SetReady(ctx, userID)
}

func (g *Registry) Start(ctx context.Context, matchID, userID string) error {
	room, err := g.Get(matchID)
	if err != nil {
		return err
	}
	return room.Start(ctx, userID)
}

func (g *Registry) SubmitPlay(ctx context.Context, matchID, userID string, cards []domain.Card) error {
	room, err := g.Get(matchID)
	if err != nil {
		return err
	}
	return room.SubmitPlay(ctx, userID, cards)
}

func (g *Registry) Pass(ctx context.Context, matchID, userID string) error {
	room, err := g.Get(matchID)
	if err != nil {
		return err
	}
	return room.Pass(ctx, userID)
}

// Leave removes the player and closes the room when it empties.
func (g *Registry) Leave(ctx context.Context, matchID, userID string) error {
	room, err := g.Get(matchID)
	if err != nil {
		return err
	}
	if err := room.Leave(ctx, userID); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rooms[matchID] == room && room.Empty() {
		delete(g.rooms, matchID)
		g.log.WithField("match_id", matchID).Info("room closed")
	}
	return nil
}

// Wait blocks until background score writes of every room have completed.
func (g *Registry) Wait() { g.pending.Wait() }
