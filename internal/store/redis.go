package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces score keys in a shared Redis.
const DefaultKeyPrefix = "tienlen:score:"

// Redis stores each total as an integer key updated with INCRBY.
type Redis struct {
	client *redis.Client
	prefix string
}

// ConnectRedis opens a client and verifies the server answers.
func ConnectRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewRedis wraps client. An empty prefix falls back to DefaultKeyPrefix.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Redis{client: client, prefix: prefix}
}

// Key returns the Redis key holding userID's total.
func (r *Redis) Key(userID string) string {
	return r.prefix + userID
}

func (r *Redis) AddScore(ctx context.Context, userID string, delta int64) error {
	if err := r.client.IncrBy(ctx, r.Key(userID), delta).Err(); err != nil {
		return fmt.Errorf("incrby %s: %w", r.Key(userID), err)
	}
	return nil
}

func (r *Redis) GetScore(ctx context.Context, userID string) (int64, error) {
	total, err := r.client.Get(ctx, r.Key(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", r.Key(userID), err)
	}
	return total, nil
}
