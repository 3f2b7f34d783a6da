package nakama

import "tienlen-server/internal/app"

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a forming match.
	RpcQuickMatch = "quick_match"

	// MatchNameTienLen is the authoritative match handler name registered with Nakama.
	MatchNameTienLen = "tienlen_match"

	// GameConfigPath is read once when the module loads.
	GameConfigPath = "data/game_config.json"
)

// Op codes for client messages.
const (
	OpReady int64 = 1
	OpStart int64 = 2
	OpPlay  int64 = 3
	OpPass  int64 = 4
)

// Op codes for server events. Each match event kind has its own code.
const (
	OpPlayersChanged int64 = 101
	OpPlayerReady    int64 = 102
	OpPlayerLeft     int64 = 103
	OpMatchStarted   int64 = 104 // sent privately, carries the hand
	OpTurnChanged    int64 = 105
	OpPlayAccepted   int64 = 106
	OpPlayRejected   int64 = 107
	OpPassAccepted   int64 = 108
	OpPlayerFinished int64 = 109
	OpRoundReset     int64 = 110
	OpScoreDelta     int64 = 111
	OpMatchOver      int64 = 112

	OpError int64 = 199
)

// GameErrorEvent codes.
const (
	errCodeBadRequest = 400
	errCodeUnknownOp  = 404
)

var eventOpCodes = map[app.EventKind]int64{
	app.EventPlayersChanged: OpPlayersChanged,
	app.EventPlayerReady:    OpPlayerReady,
	app.EventPlayerLeft:     OpPlayerLeft,
	app.EventMatchStarted:   OpMatchStarted,
	app.EventTurnChanged:    OpTurnChanged,
	app.EventPlayAccepted:   OpPlayAccepted,
	app.EventPlayRejected:   OpPlayRejected,
	app.EventPassAccepted:   OpPassAccepted,
	app.EventPlayerFinished: OpPlayerFinished,
	app.EventRoundReset:     OpRoundReset,
	app.EventScoreDelta:     OpScoreDelta,
	app.EventMatchOver:      OpMatchOver,
}

// Label keys used by the quick match query.
const (
	labelKeyGame  = "game"
	labelKeyOpen  = "open"
	labelKeyPhase = "phase"

	labelGameName = "tienlen"
)
