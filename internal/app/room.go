package app

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tienlen-server/internal/domain"
	"tienlen-server/internal/ports"
)

// Notifier delivers an event to the given players. Implementations must not block
// on slow clients; Room calls Notify while holding its dispatch lock.
type Notifier interface {
	Notify(ctx context.Context, recipients []string, ev Event)
}

// RoomOptions configures the collaborators of a Room.
type RoomOptions struct {
	Notifier     Notifier
	Scores       ports.ScorePort // optional; without it score deltas are sent provisional
	Logger       logrus.FieldLogger
	ScoreTimeout time.Duration
	Rand         *rand.Rand
}

// RoomSummary is the lobby view of a room.
type RoomSummary struct {
	ID        string         `json:"id"`
	Phase     Phase          `json:"phase"`
	Players   []PublicPlayer `json:"players"`
	MaxSeats  int            `json:"max_seats"`
	CreatedAt time.Time      `json:"created_at"`
}

// Room owns one Match and serializes every command against it. Events leave the
// room in command order; score persistence runs in the background.
type Room struct {
	mu    sync.Mutex // guards match
	match *Match

	outMu sync.Mutex // held while a command's events are dispatched

	notifier     Notifier
	scores       ports.ScorePort
	log          logrus.FieldLogger
	scoreTimeout time.Duration
	createdAt    time.Time

	pending *sync.WaitGroup
}

// NewRoom builds a room around a fresh match.
func NewRoom(id string, opts RoomOptions) *Room {
	return newRoom(id, opts, &sync.WaitGroup{})
}

func newRoom(id string, opts RoomOptions, pending *sync.WaitGroup) *Room {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	timeout := opts.ScoreTimeout
	if timeout <= 0 {
		timeout = DefaultScoreTimeout
	}
	return &Room{
		match:        NewMatch(id, opts.Rand),
		notifier:     opts.Notifier,
		scores:       opts.Scores,
		log:          log.WithField("match_id", id),
		scoreTimeout: timeout,
		createdAt:    time.Now(),
		pending:      pending,
	}
}

// ID returns the match id.
func (r *Room) ID() string { return r.match.ID }

// Join seats a player.
func (r *Room) Join(ctx context.Context, userID, name string) error {
	return r.run(ctx, userID, func(m *Match) ([]Event, error) {
		return m.Join(userID, name)
	})
}

// SetReady marks a player ready and deals as soon as everyone seated is ready.
func (r *Room) SetReady(ctx context.Context, userID string) error {
	return r.run(ctx, userID, func(m *Match) ([]Event, error) {
		events, err := m.SetReady(userID)
		if err != nil || !m.CanStart() {
			return events, err
		}
		started, err := m.TryStart()
		if err != nil {
			return events, nil
		}
		return append(events, started...), nil
	})
}

// Start deals if the table is ready.
func (r *Room) Start(ctx context.Context, userID string) error {
	return r.run(ctx, userID, func(m *Match) ([]Event, error) {
		return m.TryStart()
	})
}

// SubmitPlay plays cards for userID.
func (r *Room) SubmitPlay(ctx context.Context, userID string, cards []domain.Card) error {
	return r.run(ctx, userID, func(m *Match) ([]Event, error) {
		return m.SubmitPlay(userID, cards)
	})
}

// Pass passes the current round for userID.
func (r *Room) Pass(ctx context.Context, userID string) error {
	return r.run(ctx, userID, func(m *Match) ([]Event, error) {
		return m.Pass(userID)
	})
}

// Leave removes userID from the room.
func (r *Room) Leave(ctx context.Context, userID string) error {
	return r.run(ctx, userID, func(m *Match) ([]Event, error) {
		return m.Leave(userID)
	})
}

// Snapshot returns the lobby view of the room.
func (r *Room) Snapshot() RoomSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RoomSummary{
		ID:        r.match.ID,
		Phase:     r.match.Phase(),
		Players:   r.match.Players(),
		MaxSeats:  MaxSeats,
		CreatedAt: r.createdAt,
	}
}

// Empty reports whether nobody is seated.
func (r *Room) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.match.seats) == 0
}

// Has reports whether userID holds a seat.
func (r *Room) Has(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, _ := r.match.player(userID)
	return p != nil
}

// Inspect runs fn against the match under the room lock. fn must not retain m.
func (r *Room) Inspect(fn func(m *Match)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.match)
}

// Wait blocks until background score writes have completed.
func (r *Room) Wait() { r.pending.Wait() }

// run applies cmd under the room lock and dispatches the resulting events in order.
// A rejected command is reported to the actor only.
func (r *Room) run(ctx context.Context, userID string, cmd func(m *Match) ([]Event, error)) error {
	r.mu.Lock()
	events, err := cmd(r.match)
	seats := r.match.seatIDs()
	r.outMu.Lock()
	r.mu.Unlock()
	defer r.outMu.Unlock()

	if err != nil {
		r.log.WithFields(logrus.Fields{"user_id": userID, "error": err}).Debug("command rejected")
		r.notify(ctx, []string{userID}, Event{
			Kind: EventPlayRejected,
			Payload: PlayRejectedPayload{
				PlayerID: userID,
				Reason:   RejectReason(err),
				Message:  err.Error(),
			},
		})
		return err
	}

	for _, ev := range events {
		recipients := ev.Recipients
		if len(recipients) == 0 {
			recipients = seats
		}
		switch ev.Kind {
		case EventScoreDelta:
			r.persistScore(ctx, ev)
		case EventPlayersChanged, EventMatchStarted:
			r.notify(ctx, recipients, r.withScores(ctx, ev))
		default:
			r.notify(ctx, recipients, ev)
		}
	}
	return nil
}

func (r *Room) notify(ctx context.Context, recipients []string, ev Event) {
	if r.notifier == nil || len(recipients) == 0 {
		return
	}
	r.notifier.Notify(ctx, recipients, ev)
}

// withScores fills in the running totals of the listed players.
func (r *Room) withScores(ctx context.Context, ev Event) Event {
	if r.scores == nil {
		return ev
	}
	switch p := ev.Payload.(type) {
	case PlayersChangedPayload:
		p.Players = r.scorePlayers(ctx, p.Players)
		ev.Payload = p
	case MatchStartedPayload:
		p.Players = r.scorePlayers(ctx, p.Players)
		ev.Payload = p
	}
	return ev
}

func (r *Room) scorePlayers(ctx context.Context, players []PublicPlayer) []PublicPlayer {
	out := make([]PublicPlayer, len(players))
	copy(out, players)
	for i := range out {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.scoreTimeout)
		total, err := r.scores.GetScore(lookupCtx, out[i].ID)
		cancel()
		if err != nil {
			r.log.WithFields(logrus.Fields{"user_id": out[i].ID, "error": err}).Warn("score lookup failed")
			continue
		}
		out[i].Score = total
	}
	return out
}

// persistScore applies a delta in the background and then tells the player the new
// total. When the store fails the delta is still delivered, marked provisional.
func (r *Room) persistScore(ctx context.Context, ev Event) {
	payload, ok := ev.Payload.(ScoreDeltaPayload)
	if !ok {
		return
	}
	recipients := ev.Recipients
	if len(recipients) == 0 {
		recipients = []string{payload.PlayerID}
	}

	if r.scores == nil {
		payload.Provisional = true
		r.notify(ctx, recipients, Event{Kind: ev.Kind, Payload: payload, Recipients: recipients})
		return
	}

	base := context.WithoutCancel(ctx)
	r.pending.Add(1)
	go func() {
		defer r.pending.Done()

		writeCtx, cancel := context.WithTimeout(base, r.scoreTimeout)
		defer cancel()

		total, err := r.applyDelta(writeCtx, payload.PlayerID, int64(payload.Delta))
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"user_id": payload.PlayerID,
				"delta":   payload.Delta,
				"reason":  payload.Reason,
				"error":   err,
			}).Warn("score update failed")
			payload.Provisional = true
		} else {
			payload.NewTotal = &total
		}

		r.outMu.Lock()
		defer r.outMu.Unlock()
		r.notify(base, recipients, Event{Kind: ev.Kind, Payload: payload, Recipients: recipients})
	}()
}

func (r *Room) applyDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	if delta != 0 {
		if err := r.scores.AddScore(ctx, userID, delta); err != nil {
			return 0, err
		}
	}
	total, err := r.scores.GetScore(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("read back score: %w", err)
	}
	return total, nil
}
