// Package store holds ScorePort implementations: an in-process map for local runs
// and tests, Redis and Postgres for deployments.
package store

import (
	"context"
	"sync"
)

// Memory keeps totals in a map. Scores are lost on restart.
type Memory struct {
	mu     sync.RWMutex
	totals map[string]int64
}

// NewMemory returns an empty in-memory score store.
func NewMemory() *Memory {
	return &Memory{totals: make(map[string]int64)}
}

func (m *Memory) AddScore(ctx context.Context, userID string, delta int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals[userID] += delta
	return nil
}

func (m *Memory) GetScore(ctx context.Context, userID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totals[userID], nil
}
