package app

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienlen-server/internal/domain"
)

func card(r domain.Rank, s domain.Suit) domain.Card { return domain.Card{Rank: r, Suit: s} }

func four(r domain.Rank) []domain.Card {
	return []domain.Card{
		card(r, domain.Spades), card(r, domain.Clubs), card(r, domain.Diamonds), card(r, domain.Hearts),
	}
}

// newSeatedMatch joins and readies ids in order without dealing.
func newSeatedMatch(t *testing.T, ids ...string) *Match {
	t.Helper()
	m := NewMatch("m1", rand.New(rand.NewSource(1)))
	for _, id := range ids {
		_, err := m.Join(id, "name-"+id)
		require.NoError(t, err)
		_, err = m.SetReady(id)
		require.NoError(t, err)
	}
	return m
}

// startWithHands starts the match and then replaces the dealt hands.
func startWithHands(t *testing.T, m *Match, turn int, hands ...[]domain.Card) {
	t.Helper()
	_, err := m.TryStart()
	require.NoError(t, err)
	require.Len(t, hands, len(m.seats))
	for i, h := range hands {
		m.seats[i].Hand = domain.Sorted(h)
	}
	m.turn = turn
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func scoreDeltas(events []Event) map[string]int {
	out := make(map[string]int)
	for _, ev := range events {
		if ev.Kind != EventScoreDelta {
			continue
		}
		p := ev.Payload.(ScoreDeltaPayload)
		out[p.PlayerID] += p.Delta
	}
	return out
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}

func TestJoinFillsSeatsInOrder(t *testing.T) {
	m := NewMatch("m1", nil)
	for _, id := range []string{"a", "b", "c", "d"} {
		evs, err := m.Join(id, id)
		require.NoError(t, err)
		assert.Equal(t, []EventKind{EventPlayersChanged}, kinds(evs))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, m.Seats())

	_, err := m.Join("e", "e")
	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.Len(t, m.Seats(), 4)

	// Rejoining is a no-op for the seat order.
	_, err = m.Join("b", "bee")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, m.Seats())
	assert.Equal(t, "bee", m.Players()[1].Name)
}

func TestJoinRejectedWhilePlaying(t *testing.T) {
	m := newSeatedMatch(t, "a", "b")
	_, err := m.TryStart()
	require.NoError(t, err)

	_, err = m.Join("c", "c")
	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.Equal(t, []string{"a", "b"}, m.Seats())
}

func TestSeatedPlayerRejoinsWhilePlaying(t *testing.T) {
	m := newSeatedMatch(t, "a", "b")
	_, err := m.TryStart()
	require.NoError(t, err)
	hand := append([]domain.Card(nil), m.Hand("a")...)

	events, err := m.Join("a", "Ann")
	require.NoError(t, err)
	assert.Equal(t, []EventKind{EventPlayersChanged}, kinds(events))
	assert.Equal(t, PhasePlaying, m.Phase())
	assert.Equal(t, []string{"a", "b"}, m.Seats())
	assert.Equal(t, hand, m.Hand("a"))
}

func TestTryStartRequiresQuorum(t *testing.T) {
	m := NewMatch("m1", nil)
	_, err := m.Join("a", "a")
	require.NoError(t, err)
	_, err = m.SetReady("a")
	require.NoError(t, err)

	_, err = m.TryStart()
	assert.ErrorIs(t, err, ErrMatchNotReady)

	_, err = m.Join("b", "b")
	require.NoError(t, err)
	_, err = m.TryStart()
	assert.ErrorIs(t, err, ErrMatchNotReady, "b is not ready")
	assert.Equal(t, PhaseForming, m.Phase())

	_, err = m.SetReady("ghost")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestTryStartDealsWholeDeck(t *testing.T) {
	m := newSeatedMatch(t, "a", "b", "c", "d")
	evs, err := m.TryStart()
	require.NoError(t, err)
	assert.Equal(t, PhasePlaying, m.Phase())

	seen := make(map[domain.Card]bool)
	started := 0
	for _, ev := range evs {
		if ev.Kind != EventMatchStarted {
			continue
		}
		started++
		require.Len(t, ev.Recipients, 1)
		p := ev.Payload.(MatchStartedPayload)
		assert.Len(t, p.Hand, domain.HandSize)
		assert.Equal(t, m.CurrentTurn(), p.FirstTurn)
		for _, c := range p.Hand {
			assert.False(t, seen[c], "card %s dealt twice", c)
			seen[c] = true
		}
	}
	assert.Equal(t, 4, started)
	assert.Len(t, seen, domain.DeckSize)

	// The three of spades opens the first deal.
	assert.Contains(t, m.Hand(m.CurrentTurn()), domain.ThreeOfSpades)
}

func TestCardsAreConservedThroughPlay(t *testing.T) {
	m := newSeatedMatch(t, "a", "b", "c", "d")
	_, err := m.TryStart()
	require.NoError(t, err)

	played := make(map[domain.Card]int)
	for i := 0; i < 40 && m.Phase() == PhasePlaying; i++ {
		id := m.CurrentTurn()
		hand := m.Hand(id)
		last, _ := m.LastPlay()
		var accepted bool
		for _, c := range hand {
			play := []domain.Card{c}
			if !domain.Beats(play, last) {
				continue
			}
			_, err := m.SubmitPlay(id, play)
			require.NoError(t, err)
			played[c]++
			accepted = true
			break
		}
		if !accepted {
			_, err := m.Pass(id)
			require.NoError(t, err)
		}
	}

	total := len(played)
	for _, id := range m.Seats() {
		for _, c := range m.Hand(id) {
			assert.Zero(t, played[c], "card %s both played and held", c)
			total++
		}
	}
	for c, n := range played {
		assert.Equal(t, 1, n, "card %s played %d times", c, n)
	}
	if m.Phase() == PhasePlaying {
		assert.Equal(t, domain.DeckSize, total)
	}
}

func TestSubmitPlayRejections(t *testing.T) {
	m := newSeatedMatch(t, "a", "b")
	startWithHands(t, m, 0,
		[]domain.Card{card(3, domain.Spades), card(5, domain.Spades), card(9, domain.Hearts)},
		[]domain.Card{card(4, domain.Spades), card(8, domain.Clubs)},
	)
	_, err := m.SubmitPlay("a", []domain.Card{card(9, domain.Hearts)})
	require.NoError(t, err)
	require.Equal(t, "b", m.CurrentTurn())

	tests := []struct {
		name   string
		player string
		cards  []domain.Card
		want   error
	}{
		{name: "unknown player", player: "ghost", cards: []domain.Card{card(4, domain.Spades)}, want: ErrUnknownPlayer},
		{name: "out of turn", player: "a", cards: []domain.Card{card(5, domain.Spades)}, want: ErrNotYourTurn},
		{name: "invalid combo", player: "b", cards: []domain.Card{card(4, domain.Spades), card(8, domain.Clubs)}, want: ErrIllegalMove},
		{name: "card not held", player: "b", cards: []domain.Card{card(domain.RankTwo, domain.Hearts)}, want: ErrIllegalMove},
		{name: "too weak", player: "b", cards: []domain.Card{card(8, domain.Clubs)}, want: ErrTooWeak},
		{name: "empty play", player: "b", cards: nil, want: ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := m.Hand(tt.player)
			_, err := m.SubmitPlay(tt.player, tt.cards)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, m.Hand(tt.player))
			assert.Equal(t, "b", m.CurrentTurn())
			last, owner := m.LastPlay()
			assert.Equal(t, []domain.Card{card(9, domain.Hearts)}, last)
			assert.Equal(t, "a", owner)
		})
	}
}

func TestCommandsOutsidePlay(t *testing.T) {
	m := newSeatedMatch(t, "a", "b")
	_, err := m.SubmitPlay("a", []domain.Card{domain.ThreeOfSpades})
	assert.ErrorIs(t, err, ErrNotPlaying)
	_, err = m.Pass("a")
	assert.ErrorIs(t, err, ErrNotPlaying)
}

func TestAdvanceTurnSkipsPassedAndFinished(t *testing.T) {
	m := newSeatedMatch(t, "p0", "p1", "p2", "p3")
	_, err := m.TryStart()
	require.NoError(t, err)

	m.seats[2].Finished = true
	m.passed["p3"] = true
	m.turn = 0

	m.advanceTurn()
	assert.Equal(t, 1, m.turn)

	// From seat 1 the previous seat is 0.
	m.advanceTurn()
	assert.Equal(t, 0, m.turn)

	// From seat 0, wrap to 3 (passed) then 2 (finished) then 1.
	m.advanceTurn()
	assert.Equal(t, 1, m.turn)
}

func TestRoundResetAfterAllOthersPass(t *testing.T) {
	m := newSeatedMatch(t, "p0", "p1", "p2", "p3")
	startWithHands(t, m, 0,
		[]domain.Card{card(10, domain.Spades), card(4, domain.Hearts)},
		[]domain.Card{card(5, domain.Spades), card(6, domain.Hearts)},
		[]domain.Card{card(7, domain.Spades), card(8, domain.Hearts)},
		[]domain.Card{card(9, domain.Clubs), card(11, domain.Hearts)},
	)

	_, err := m.SubmitPlay("p0", []domain.Card{card(10, domain.Spades)})
	require.NoError(t, err)
	assert.Equal(t, "p3", m.CurrentTurn())

	_, err = m.Pass("p3")
	require.NoError(t, err)
	assert.Equal(t, "p2", m.CurrentTurn())
	_, err = m.Pass("p2")
	require.NoError(t, err)
	assert.Equal(t, "p1", m.CurrentTurn())

	evs, err := m.Pass("p1")
	require.NoError(t, err)
	assert.Equal(t, []EventKind{EventPassAccepted, EventRoundReset}, kinds(evs))
	assert.Equal(t, RoundResetPayload{NextTurn: "p0"}, evs[1].Payload)

	last, owner := m.LastPlay()
	assert.Empty(t, last)
	assert.Empty(t, owner)
	assert.Equal(t, "p0", m.CurrentTurn())
	for _, id := range m.Seats() {
		assert.False(t, m.HasPassed(id))
	}

	// Any legal combination opens the new round.
	_, err = m.SubmitPlay("p0", []domain.Card{card(4, domain.Hearts)})
	require.NoError(t, err)
}

func TestPassRejections(t *testing.T) {
	m := newSeatedMatch(t, "a", "b", "c")
	startWithHands(t, m, 0,
		[]domain.Card{card(3, domain.Spades), card(4, domain.Spades)},
		[]domain.Card{card(5, domain.Spades), card(6, domain.Spades)},
		[]domain.Card{card(7, domain.Spades), card(8, domain.Spades)},
	)
	_, err := m.SubmitPlay("a", []domain.Card{card(3, domain.Spades)})
	require.NoError(t, err)
	require.Equal(t, "c", m.CurrentTurn())

	_, err = m.Pass("b")
	assert.ErrorIs(t, err, ErrNotYourTurn)
	assert.False(t, m.HasPassed("b"))

	_, err = m.Pass("c")
	require.NoError(t, err)
	_, err = m.Pass("c")
	assert.ErrorIs(t, err, ErrAlreadyPassed)
	_, err = m.SubmitPlay("c", []domain.Card{card(8, domain.Spades)})
	assert.ErrorIs(t, err, ErrNotYourTurn)

	_, err = m.Pass("ghost")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestTwoPlayerMatchRanking(t *testing.T) {
	m := newSeatedMatch(t, "x", "y")
	startWithHands(t, m, 0,
		[]domain.Card{card(10, domain.Hearts)},
		[]domain.Card{card(4, domain.Spades), card(5, domain.Clubs)},
	)

	evs, err := m.SubmitPlay("x", []domain.Card{card(10, domain.Hearts)})
	require.NoError(t, err)

	over, ok := findEvent(evs, EventMatchOver)
	require.True(t, ok)
	assert.Equal(t, MatchOverPayload{Ranking: []string{"x", "y"}, Loser: "y"}, over.Payload)
	assert.Equal(t, map[string]int{"x": 10, "y": 0}, scoreDeltas(evs))

	// Ranking deltas are addressed to the player they concern.
	for _, ev := range evs {
		if ev.Kind == EventScoreDelta {
			assert.Equal(t, []string{ev.Payload.(ScoreDeltaPayload).PlayerID}, ev.Recipients)
		}
	}

	assert.Equal(t, PhaseForming, m.Phase())
	assert.Equal(t, "x", m.LastWinner())
	for _, p := range m.Players() {
		assert.False(t, p.Ready)
		assert.Zero(t, p.CardCount)
	}
}

func TestChopScoresBothPlayers(t *testing.T) {
	m := newSeatedMatch(t, "a", "b")
	startWithHands(t, m, 0,
		[]domain.Card{card(domain.RankTwo, domain.Spades), card(3, domain.Spades)},
		append(four(6), card(9, domain.Clubs)),
	)

	_, err := m.SubmitPlay("a", []domain.Card{card(domain.RankTwo, domain.Spades)})
	require.NoError(t, err)

	evs, err := m.SubmitPlay("b", four(6))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"b": 5, "a": -5}, scoreDeltas(evs))
	assert.Equal(t, "a", m.CurrentTurn())

	for _, ev := range evs {
		if ev.Kind == EventScoreDelta {
			assert.Equal(t, ScoreReasonChop, ev.Payload.(ScoreDeltaPayload).Reason)
		}
	}
}

func TestThreePlayerRankingPoints(t *testing.T) {
	m := newSeatedMatch(t, "a", "b", "c")
	startWithHands(t, m, 0,
		[]domain.Card{card(3, domain.Spades)},
		[]domain.Card{card(4, domain.Spades), card(9, domain.Hearts)},
		[]domain.Card{card(5, domain.Spades), card(6, domain.Hearts)},
	)

	// a finishes first, then c beats it and the turn moves on.
	_, err := m.SubmitPlay("a", []domain.Card{card(3, domain.Spades)})
	require.NoError(t, err)
	assert.Equal(t, "c", m.CurrentTurn())

	_, err = m.SubmitPlay("c", []domain.Card{card(5, domain.Spades)})
	require.NoError(t, err)
	assert.Equal(t, "b", m.CurrentTurn())

	_, err = m.SubmitPlay("b", []domain.Card{card(9, domain.Hearts)})
	require.NoError(t, err)
	_, err = m.Pass("c")
	require.NoError(t, err)
	assert.Equal(t, "b", m.CurrentTurn())

	evs, err := m.SubmitPlay("b", []domain.Card{card(4, domain.Spades)})
	require.NoError(t, err)

	over, ok := findEvent(evs, EventMatchOver)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, over.Payload.(MatchOverPayload).Ranking)
	assert.Equal(t, map[string]int{"a": 10, "b": 5, "c": 0}, scoreDeltas(evs))
}

func TestRoundResetWhenIncumbentFinished(t *testing.T) {
	m := newSeatedMatch(t, "a", "b", "c")
	startWithHands(t, m, 0,
		[]domain.Card{card(3, domain.Spades), card(4, domain.Spades)},
		[]domain.Card{card(domain.RankTwo, domain.Hearts)},
		[]domain.Card{card(5, domain.Spades), card(6, domain.Hearts)},
	)

	_, err := m.SubmitPlay("a", []domain.Card{card(3, domain.Spades)})
	require.NoError(t, err)
	_, err = m.Pass("c")
	require.NoError(t, err)
	require.Equal(t, "b", m.CurrentTurn())

	// b goes out on a 2; a is the only one left who has not passed.
	_, err = m.SubmitPlay("b", []domain.Card{card(domain.RankTwo, domain.Hearts)})
	require.NoError(t, err)
	require.Equal(t, "a", m.CurrentTurn())

	evs, err := m.Pass("a")
	require.NoError(t, err)
	reset, ok := findEvent(evs, EventRoundReset)
	require.True(t, ok)
	assert.Equal(t, "c", reset.Payload.(RoundResetPayload).NextTurn)
	assert.Equal(t, "c", m.CurrentTurn())
	last, _ := m.LastPlay()
	assert.Empty(t, last)
}

func TestWinnerLeadsNextDeal(t *testing.T) {
	m := newSeatedMatch(t, "x", "y")
	startWithHands(t, m, 1,
		[]domain.Card{card(4, domain.Spades), card(5, domain.Clubs)},
		[]domain.Card{card(10, domain.Hearts)},
	)
	_, err := m.SubmitPlay("y", []domain.Card{card(10, domain.Hearts)})
	require.NoError(t, err)
	require.Equal(t, "y", m.LastWinner())

	for _, id := range m.Seats() {
		_, err := m.SetReady(id)
		require.NoError(t, err)
	}
	_, err = m.TryStart()
	require.NoError(t, err)
	assert.Equal(t, "y", m.CurrentTurn())
}

func TestLeaveResetsMatch(t *testing.T) {
	m := newSeatedMatch(t, "a", "b", "c")
	_, err := m.TryStart()
	require.NoError(t, err)

	evs, err := m.Leave("b")
	require.NoError(t, err)
	left, ok := findEvent(evs, EventPlayerLeft)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"a", "c", "b"}, left.Recipients)

	assert.Equal(t, PhaseForming, m.Phase())
	assert.Equal(t, []string{"a", "c"}, m.Seats())
	assert.Empty(t, m.Hand("a"))

	_, err = m.Leave("b")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestResetClearsWinnerWhenEmpty(t *testing.T) {
	m := newSeatedMatch(t, "a")
	m.lastWinner = "a"
	_, err := m.Leave("a")
	require.NoError(t, err)
	assert.Empty(t, m.LastWinner())
}
