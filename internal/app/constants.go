package app

import "time"

// MinPlayersToStartGame defines the minimum number of occupied seats required to start a game.
// Keep this centralized so tests or local runs can adjust the rule without touching multiple call sites.
const MinPlayersToStartGame = 2

// MaxSeats is the table capacity.
const MaxSeats = 4

// DefaultScoreTimeout bounds each round-trip to the score store.
const DefaultScoreTimeout = 2 * time.Second
