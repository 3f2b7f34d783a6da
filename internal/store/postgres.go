package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS player_scores (
		user_id    TEXT PRIMARY KEY,
		score      BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// Postgres keeps one row per player in player_scores.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres opens a pool for connStr and pings it.
func ConnectPostgres(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pgx config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return pool, nil
}

// NewPostgres wraps pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema creates the scores table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schema)
	return err
}

func (p *Postgres) AddScore(ctx context.Context, userID string, delta int64) error {
	q := `
		INSERT INTO player_scores (user_id, score)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET score = player_scores.score + EXCLUDED.score, updated_at = NOW()
	`
	return pgx.BeginTxFunc(ctx, p.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, q, userID, delta)
		return err
	})
}

func (p *Postgres) GetScore(ctx context.Context, userID string) (int64, error) {
	q := `SELECT score FROM player_scores WHERE user_id = $1`

	var total int64
	err := p.pool.QueryRow(ctx, q, userID).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("select score for %s: %w", userID, err)
	}
	return total, nil
}
