package app

import (
	"fmt"
	"math/rand"
	"time"

	"tienlen-server/internal/domain"
)

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseForming is the pre-deal state where players join and ready up.
	PhaseForming Phase = "forming"
	// PhasePlaying is the active state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseFinished is entered when one player is left holding cards. It is
	// transient: the match resets to PhaseForming in the same command.
	PhaseFinished Phase = "finished"
)

// Player holds the per-match state of a seated participant.
type Player struct {
	ID       string
	Name     string
	Hand     []domain.Card
	Ready    bool
	Finished bool
}

// Match is the turn-based state machine of one room. It is not safe for concurrent
// use; Room serializes access. Every command either returns an error and leaves the
// state untouched or applies the change and returns the events it produced.
type Match struct {
	ID string

	phase Phase
	seats []*Player // fixed seat order; defines deal order and turn rotation

	turn          int
	lastPlay      []domain.Card
	lastPlayOwner string
	passed        map[string]bool
	finishOrder   []string

	// lastWinner is the first finisher of the previous match, who leads the next deal.
	lastWinner string

	rng *rand.Rand
}

// NewMatch constructs an empty match with provided rng or a time-seeded default.
func NewMatch(id string, rng *rand.Rand) *Match {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Match{
		ID:     id,
		phase:  PhaseForming,
		passed: make(map[string]bool),
		rng:    rng,
	}
}

// Join seats a player at the end of the seat order.
func (m *Match) Join(userID, name string) ([]Event, error) {
	if p, _ := m.player(userID); p != nil {
		if name != "" {
			p.Name = name
		}
		return []Event{m.playersChanged()}, nil
	}
	if m.phase != PhaseForming {
		return nil, fmt.Errorf("join %s: match in progress: %w", userID, ErrSeatUnavailable)
	}
	if len(m.seats) >= MaxSeats {
		return nil, fmt.Errorf("join %s: match full: %w", userID, ErrSeatUnavailable)
	}

	m.seats = append(m.seats, &Player{ID: userID, Name: name})
	return []Event{m.playersChanged()}, nil
}

// SetReady marks a seated player ready. Repeated calls are harmless.
func (m *Match) SetReady(userID string) ([]Event, error) {
	p, _ := m.player(userID)
	if p == nil {
		return nil, fmt.Errorf("ready %s: %w", userID, ErrUnknownPlayer)
	}
	if m.phase != PhaseForming || p.Ready {
		return nil, nil
	}

	p.Ready = true
	return []Event{
		broadcast(EventPlayerReady, PlayerReadyPayload{PlayerID: userID}),
		m.playersChanged(),
	}, nil
}

// CanStart reports whether the deal quorum is met: at least two seated, all ready.
func (m *Match) CanStart() bool {
	if m.phase != PhaseForming || len(m.seats) < MinPlayersToStartGame {
		return false
	}
	for _, p := range m.seats {
		if !p.Ready {
			return false
		}
	}
	return true
}

// TryStart deals a fresh deck and opens play.
func (m *Match) TryStart() ([]Event, error) {
	if !m.CanStart() {
		return nil, fmt.Errorf("start: %d seated: %w", len(m.seats), ErrMatchNotReady)
	}

	deck := domain.NewDeck()
	domain.Shuffle(m.rng, deck)
	hands := domain.Deal(deck, len(m.seats))
	for i, p := range m.seats {
		p.Hand = hands[i]
		p.Finished = false
	}

	m.phase = PhasePlaying
	m.lastPlay = nil
	m.lastPlayOwner = ""
	m.passed = make(map[string]bool)
	m.finishOrder = nil
	m.turn = m.openingSeat()

	first := m.seats[m.turn].ID
	players := m.publicPlayers()

	events := make([]Event, 0, len(m.seats)+1)
	for _, p := range m.seats {
		events = append(events, private(EventMatchStarted, MatchStartedPayload{
			Hand:      append([]domain.Card(nil), p.Hand...),
			Players:   players,
			FirstTurn: first,
		}, p.ID))
	}
	events = append(events, broadcast(EventTurnChanged, TurnChangedPayload{PlayerID: first}))
	return events, nil
}

// openingSeat picks the carried-over winner if still seated, else the holder of
// the three of spades, else seat 0.
func (m *Match) openingSeat() int {
	if m.lastWinner != "" {
		if _, idx := m.player(m.lastWinner); idx >= 0 {
			return idx
		}
	}
	for i, p := range m.seats {
		if domain.Contains(p.Hand, domain.ThreeOfSpades) {
			return i
		}
	}
	return 0
}

// SubmitPlay validates and applies a play from the player to move.
func (m *Match) SubmitPlay(userID string, cards []domain.Card) ([]Event, error) {
	if m.phase != PhasePlaying {
		return nil, fmt.Errorf("play %s: %w", userID, ErrNotPlaying)
	}
	p, idx := m.player(userID)
	if p == nil {
		return nil, fmt.Errorf("play %s: %w", userID, ErrUnknownPlayer)
	}
	if idx != m.turn || p.Finished {
		return nil, fmt.Errorf("play %s: %w", userID, ErrNotYourTurn)
	}
	if m.passed[userID] {
		return nil, fmt.Errorf("play %s: %w", userID, ErrAlreadyPassed)
	}
	if !domain.IsLegal(cards) {
		return nil, fmt.Errorf("play %s %v: %s: %w", userID, cards, domain.Classify(cards), ErrIllegalMove)
	}
	if !domain.HasCards(p.Hand, cards) {
		return nil, fmt.Errorf("play %s %v: cards not in hand: %w", userID, cards, ErrIllegalMove)
	}
	if !domain.Beats(cards, m.lastPlay) {
		return nil, fmt.Errorf("play %s %v over %v: %w", userID, cards, m.lastPlay, ErrTooWeak)
	}

	play := domain.Sorted(cards)
	p.Hand = domain.RemoveCards(p.Hand, play)

	events := []Event{broadcast(EventPlayAccepted, PlayAcceptedPayload{
		PlayerID: userID,
		Cards:    play,
		Combo:    domain.Classify(play).String(),
	})}

	// Chop scoring uses the incumbent before it is overwritten.
	if m.lastPlayOwner != "" {
		if delta := domain.ChopDelta(play, m.lastPlay); delta > 0 {
			events = append(events,
				private(EventScoreDelta, ScoreDeltaPayload{PlayerID: userID, Delta: delta, Reason: ScoreReasonChop}, userID),
				private(EventScoreDelta, ScoreDeltaPayload{PlayerID: m.lastPlayOwner, Delta: -delta, Reason: ScoreReasonChop}, m.lastPlayOwner),
			)
		}
	}

	m.lastPlay = play
	m.lastPlayOwner = userID
	events = append(events, m.playersChanged())

	if len(p.Hand) == 0 {
		events = append(events, m.finish(p))
	}

	remaining := m.unfinished()
	if len(remaining) <= 1 {
		return append(events, m.endMatch(remaining)...), nil
	}

	m.advanceTurn()
	events = append(events, broadcast(EventTurnChanged, TurnChangedPayload{PlayerID: m.seats[m.turn].ID}))
	return events, nil
}

// Pass drops the player to move out of the current round. When a single active
// player remains, the table clears and that player leads the next round.
func (m *Match) Pass(userID string) ([]Event, error) {
	if m.phase != PhasePlaying {
		return nil, fmt.Errorf("pass %s: %w", userID, ErrNotPlaying)
	}
	p, idx := m.player(userID)
	if p == nil {
		return nil, fmt.Errorf("pass %s: %w", userID, ErrUnknownPlayer)
	}
	if m.passed[userID] {
		return nil, fmt.Errorf("pass %s: %w", userID, ErrAlreadyPassed)
	}
	if idx != m.turn || p.Finished {
		return nil, fmt.Errorf("pass %s: %w", userID, ErrNotYourTurn)
	}

	m.passed[userID] = true
	events := []Event{broadcast(EventPassAccepted, PassAcceptedPayload{PlayerID: userID})}

	active := m.active()
	if len(active) == 1 {
		m.lastPlay = nil
		m.lastPlayOwner = ""
		m.passed = make(map[string]bool)
		_, m.turn = m.player(active[0].ID)
		return append(events, broadcast(EventRoundReset, RoundResetPayload{NextTurn: active[0].ID})), nil
	}
	if len(active) == 0 {
		// The incumbent finished on their play; the next holder opens.
		m.lastPlay = nil
		m.lastPlayOwner = ""
		m.passed = make(map[string]bool)
		m.advanceTurn()
		next := m.seats[m.turn].ID
		return append(events, broadcast(EventRoundReset, RoundResetPayload{NextTurn: next})), nil
	}

	m.advanceTurn()
	return append(events, broadcast(EventTurnChanged, TurnChangedPayload{PlayerID: m.seats[m.turn].ID})), nil
}

// Leave removes a player and resets the match for everyone still seated.
func (m *Match) Leave(userID string) ([]Event, error) {
	_, idx := m.player(userID)
	if idx < 0 {
		return nil, fmt.Errorf("leave %s: %w", userID, ErrUnknownPlayer)
	}
	m.seats = append(m.seats[:idx], m.seats[idx+1:]...)

	// The leaver hears about it too, so they can drop the room on their side.
	recipients := append(m.seatIDs(), userID)
	events := []Event{{
		Kind:       EventPlayerLeft,
		Payload:    PlayerLeftPayload{MatchID: m.ID, PlayerID: userID},
		Recipients: recipients,
	}}
	return append(events, m.Reset()...), nil
}

// Reset returns the match to the forming phase, keeping seated players and the
// carried-over winner. With nobody seated the winner is forgotten too.
func (m *Match) Reset() []Event {
	m.phase = PhaseForming
	for _, p := range m.seats {
		p.Ready = false
		p.Finished = false
		p.Hand = nil
	}
	m.turn = 0
	m.lastPlay = nil
	m.lastPlayOwner = ""
	m.passed = make(map[string]bool)
	m.finishOrder = nil
	if len(m.seats) == 0 {
		m.lastWinner = ""
	}
	return []Event{m.playersChanged()}
}

// endMatch force-finishes the last holder, awards ranking points and resets.
func (m *Match) endMatch(remaining []*Player) []Event {
	var events []Event
	loser := ""
	for _, p := range remaining {
		loser = p.ID
		events = append(events, m.finish(p))
	}
	m.phase = PhaseFinished

	ranking := domain.Ranking(m.finishOrder, m.seatIDs())
	points := domain.RankPoints(len(m.seats))
	for i, id := range ranking {
		if i >= len(points) {
			break
		}
		events = append(events, private(EventScoreDelta, ScoreDeltaPayload{
			PlayerID: id,
			Delta:    points[i],
			Reason:   ScoreReasonRanking,
		}, id))
	}
	events = append(events, broadcast(EventMatchOver, MatchOverPayload{Ranking: ranking, Loser: loser}))

	if len(ranking) > 0 {
		m.lastWinner = ranking[0]
	}
	return append(events, m.Reset()...)
}

func (m *Match) finish(p *Player) Event {
	p.Finished = true
	m.finishOrder = append(m.finishOrder, p.ID)
	return broadcast(EventPlayerFinished, PlayerFinishedPayload{PlayerID: p.ID})
}

// advanceTurn moves to the previous seat, skipping passed and finished players.
// It scans at most one full lap.
func (m *Match) advanceTurn() {
	total := len(m.seats)
	next := m.turn
	for i := 0; i < total; i++ {
		next = (next - 1 + total) % total
		p := m.seats[next]
		if !m.passed[p.ID] && !p.Finished {
			m.turn = next
			return
		}
	}
}

func (m *Match) player(userID string) (*Player, int) {
	for i, p := range m.seats {
		if p.ID == userID {
			return p, i
		}
	}
	return nil, -1
}

func (m *Match) unfinished() []*Player {
	var out []*Player
	for _, p := range m.seats {
		if !p.Finished {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) active() []*Player {
	var out []*Player
	for _, p := range m.seats {
		if !p.Finished && !m.passed[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) seatIDs() []string {
	ids := make([]string, len(m.seats))
	for i, p := range m.seats {
		ids[i] = p.ID
	}
	return ids
}

func (m *Match) publicPlayers() []PublicPlayer {
	players := make([]PublicPlayer, len(m.seats))
	for i, p := range m.seats {
		players[i] = PublicPlayer{
			ID:        p.ID,
			Name:      p.Name,
			Seat:      i,
			Ready:     p.Ready,
			CardCount: len(p.Hand),
			Finished:  p.Finished,
		}
	}
	return players
}

func (m *Match) playersChanged() Event {
	return broadcast(EventPlayersChanged, PlayersChangedPayload{MatchID: m.ID, Players: m.publicPlayers()})
}

// Phase returns the current lifecycle stage.
func (m *Match) Phase() Phase { return m.phase }

// Seats returns player ids in seat order.
func (m *Match) Seats() []string { return m.seatIDs() }

// Players returns the public view of every seated player.
func (m *Match) Players() []PublicPlayer { return m.publicPlayers() }

// CurrentTurn returns the id of the player to move, or "" outside of play.
func (m *Match) CurrentTurn() string {
	if m.phase != PhasePlaying || len(m.seats) == 0 {
		return ""
	}
	return m.seats[m.turn].ID
}

// LastPlay returns the incumbent play and its owner; nil when the table is open.
func (m *Match) LastPlay() ([]domain.Card, string) {
	return append([]domain.Card(nil), m.lastPlay...), m.lastPlayOwner
}

// Hand returns a copy of a seated player's hand.
func (m *Match) Hand(userID string) []domain.Card {
	p, _ := m.player(userID)
	if p == nil {
		return nil
	}
	return append([]domain.Card(nil), p.Hand...)
}

// HasPassed reports whether the player passed in the current round.
func (m *Match) HasPassed(userID string) bool { return m.passed[userID] }

// LastWinner returns the player who will lead the next deal, if still seated.
func (m *Match) LastWinner() string { return m.lastWinner }
