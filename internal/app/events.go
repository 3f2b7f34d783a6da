package app

import "tienlen-server/internal/domain"

// EventKind identifies emitted match events for transport dispatch.
type EventKind string

const (
	EventPlayersChanged EventKind = "players_changed"
	EventPlayerReady    EventKind = "player_ready"
	EventPlayerLeft     EventKind = "player_left"
	EventMatchStarted   EventKind = "match_started"
	EventTurnChanged    EventKind = "turn_changed"
	EventPlayAccepted   EventKind = "play_accepted"
	EventPlayRejected   EventKind = "play_rejected"
	EventPassAccepted   EventKind = "pass_accepted"
	EventPlayerFinished EventKind = "player_finished"
	EventRoundReset     EventKind = "round_reset"
	EventScoreDelta     EventKind = "score_delta"
	EventMatchOver      EventKind = "match_over"
)

// Event is a match event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means every seated player
}

// PublicPlayer is the view of a seated player shared with everyone at the table.
type PublicPlayer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Seat      int    `json:"seat"`
	Ready     bool   `json:"ready"`
	CardCount int    `json:"card_count"`
	Finished  bool   `json:"finished"`
	Score     int64  `json:"score"`
}

type PlayersChangedPayload struct {
	MatchID string         `json:"match_id"`
	Players []PublicPlayer `json:"players"`
}

type PlayerReadyPayload struct {
	PlayerID string `json:"player_id"`
}

type PlayerLeftPayload struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
}

// MatchStartedPayload is sent privately: Hand belongs to the recipient only.
type MatchStartedPayload struct {
	Hand      []domain.Card  `json:"hand"`
	Players   []PublicPlayer `json:"players"`
	FirstTurn string         `json:"first_turn"`
}

type TurnChangedPayload struct {
	PlayerID string `json:"player_id"`
}

type PlayAcceptedPayload struct {
	PlayerID string        `json:"player_id"`
	Cards    []domain.Card `json:"cards"`
	Combo    string        `json:"combo"`
}

type PlayRejectedPayload struct {
	PlayerID string `json:"player_id"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
}

type PassAcceptedPayload struct {
	PlayerID string `json:"player_id"`
}

type PlayerFinishedPayload struct {
	PlayerID string `json:"player_id"`
}

type RoundResetPayload struct {
	NextTurn string `json:"next_turn"`
}

// ScoreReason says why a score delta was awarded.
type ScoreReason string

const (
	ScoreReasonChop    ScoreReason = "chop"
	ScoreReasonRanking ScoreReason = "ranking"
)

// ScoreDeltaPayload carries a point change. NewTotal is filled in once the score store
// answers; Provisional marks a total that could not be confirmed by the store.
type ScoreDeltaPayload struct {
	PlayerID    string      `json:"player_id"`
	Delta       int         `json:"delta"`
	Reason      ScoreReason `json:"reason"`
	NewTotal    *int64      `json:"new_total,omitempty"`
	Provisional bool        `json:"provisional"`
}

type MatchOverPayload struct {
	Ranking []string `json:"ranking"`
	Loser   string   `json:"loser"`
}

func broadcast(kind EventKind, payload any) Event {
	return Event{Kind: kind, Payload: payload}
}

func private(kind EventKind, payload any, userID string) Event {
	return Event{Kind: kind, Payload: payload, Recipients: []string{userID}}
}
