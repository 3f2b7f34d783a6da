package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameConfig(t *testing.T) {
	c, err := ParseGameConfig([]byte(`{"score_timeout_ms": 750, "tick_rate": 10}`))
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, c.ScoreTimeout())
	assert.Equal(t, 10, c.Ticks())
	assert.Equal(t, defaultQuickMatchListLimit, c.ListLimit())

	_, err = ParseGameConfig([]byte(`{"tick_rate": -1}`))
	assert.Error(t, err)

	_, err = ParseGameConfig([]byte(`not json`))
	assert.Error(t, err)
}

func TestNilGameConfigDefaults(t *testing.T) {
	var c *GameConfig
	assert.Equal(t, defaultScoreTimeout, c.ScoreTimeout())
	assert.Equal(t, defaultTickRate, c.Ticks())
	assert.Equal(t, defaultQuickMatchListLimit, c.ListLimit())
}

func TestLoadGameConfigOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"score_timeout_ms": 100}`), 0o600))

	require.NoError(t, LoadGameConfig(path))
	require.NotNil(t, GetGameConfig())
	assert.Equal(t, 100*time.Millisecond, GetGameConfig().ScoreTimeout())

	// Later calls keep the first result.
	require.NoError(t, LoadGameConfig(filepath.Join(dir, "missing.json")))
	assert.Equal(t, 100*time.Millisecond, GetGameConfig().ScoreTimeout())
}

func TestLoadServerConfigFromEnvFile(t *testing.T) {
	for _, k := range []string{"TIENLEN_ADDR", "TIENLEN_JWT_SECRET", "TIENLEN_SCORE_BACKEND", "REDIS_DB", "DATABASE_URL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TIENLEN_JWT_SECRET=s3cret\nTIENLEN_SCORE_BACKEND=redis\nREDIS_DB=3\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("TIENLEN_JWT_SECRET")
		os.Unsetenv("TIENLEN_SCORE_BACKEND")
		os.Unsetenv("REDIS_DB")
	})

	c, err := LoadServerConfig(envFile, filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, BackendRedis, c.ScoreBackend)
	assert.Equal(t, 3, c.RedisDB)
}

func TestLoadServerConfigValidation(t *testing.T) {
	t.Setenv("TIENLEN_JWT_SECRET", "x")

	t.Setenv("TIENLEN_SCORE_BACKEND", "sqlite")
	_, err := LoadServerConfig()
	assert.ErrorContains(t, err, "unknown score backend")

	t.Setenv("TIENLEN_SCORE_BACKEND", BackendPostgres)
	t.Setenv("DATABASE_URL", "")
	_, err = LoadServerConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("TIENLEN_SCORE_BACKEND", BackendMemory)
	t.Setenv("TIENLEN_JWT_SECRET", "")
	_, err = LoadServerConfig()
	assert.ErrorContains(t, err, "TIENLEN_JWT_SECRET")
}
