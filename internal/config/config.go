package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// GameConfig holds tunables that do not change the rules of play.
type GameConfig struct {
	// ScoreTimeoutMillis bounds each score store call made on behalf of a match.
	ScoreTimeoutMillis int `json:"score_timeout_ms"`
	// TickRate is the Nakama match loop frequency in ticks per second.
	TickRate int `json:"tick_rate"`
	// QuickMatchListLimit caps how many open matches the quick match RPC inspects.
	QuickMatchListLimit int `json:"quick_match_list_limit"`
}

const (
	defaultScoreTimeout        = 2 * time.Second
	defaultTickRate            = 5
	defaultQuickMatchListLimit = 10
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. Only the first
// call reads the file.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := ParseGameConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// ParseGameConfig decodes a JSON game configuration.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if c.ScoreTimeoutMillis < 0 || c.TickRate < 0 || c.QuickMatchListLimit < 0 {
		return nil, fmt.Errorf("game config: negative values are not allowed")
	}
	return &c, nil
}

// GetGameConfig returns the global game configuration, or nil before a successful load.
func GetGameConfig() *GameConfig {
	return cfg
}

// ScoreTimeout returns the configured store timeout, or the default.
func (c *GameConfig) ScoreTimeout() time.Duration {
	if c == nil || c.ScoreTimeoutMillis == 0 {
		return defaultScoreTimeout
	}
	return time.Duration(c.ScoreTimeoutMillis) * time.Millisecond
}

// Ticks returns the configured tick rate, or the default.
func (c *GameConfig) Ticks() int {
	if c == nil || c.TickRate == 0 {
		return defaultTickRate
	}
	return c.TickRate
}

// ListLimit returns the configured quick match scan size, or the default.
func (c *GameConfig) ListLimit() int {
	if c == nil || c.QuickMatchListLimit == 0 {
		return defaultQuickMatchListLimit
	}
	return c.QuickMatchListLimit
}

// Score store backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// ServerConfig is the environment of the standalone server.
type ServerConfig struct {
	Addr           string
	JWTSecret      string
	ScoreBackend   string
	RedisAddr      string
	RedisDB        int
	DatabaseURL    string
	GameConfigPath string
	LogLevel       string
}

// LoadServerConfig reads the server environment. Listed env files are loaded first
// without overriding variables that are already set; missing files are skipped.
func LoadServerConfig(envFiles ...string) (*ServerConfig, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	c := &ServerConfig{
		Addr:           getEnv("TIENLEN_ADDR", ":8080"),
		JWTSecret:      os.Getenv("TIENLEN_JWT_SECRET"),
		ScoreBackend:   getEnv("TIENLEN_SCORE_BACKEND", BackendMemory),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GameConfigPath: getEnv("TIENLEN_GAME_CONFIG", "data/game_config.json"),
		LogLevel:       getEnv("TIENLEN_LOG_LEVEL", "info"),
	}

	switch c.ScoreBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return nil, fmt.Errorf("score backend %q requires DATABASE_URL", c.ScoreBackend)
		}
	default:
		return nil, fmt.Errorf("unknown score backend %q", c.ScoreBackend)
	}
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("TIENLEN_JWT_SECRET is required")
	}
	return c, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
