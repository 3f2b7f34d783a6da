package ports

import "context"

// ScorePort is the boundary to the external score store. Implementations must be safe
// for concurrent use; the match never waits on them past a bounded timeout.
type ScorePort interface {
	// AddScore applies delta to the player's running total.
	AddScore(ctx context.Context, userID string, delta int64) error

	// GetScore returns the player's current total. Unknown players have a zero total.
	GetScore(ctx context.Context, userID string) (int64, error)
}
