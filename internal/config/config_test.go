package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv registers the restore, Unsetenv clears it for this test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "MONGO_URI", "SKIP_AUTH", "SEED", "SEED_EXTENSIONS", "SEED_DEMO_DATA", "SIMULATED_LATENCY", "SNAPSHOT_SCHEDULE")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.MongoURI)
	assert.False(t, cfg.SkipAuth)
	assert.True(t, cfg.SeedDemoData)
	assert.False(t, cfg.SimulatedLatency)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 100, cfg.SeedExtensions)
	assert.Equal(t, "@every 5m", cfg.SnapshotSchedule)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SKIP_AUTH", "true")
	t.Setenv("SEED", "7")
	t.Setenv("SEED_EXTENSIONS", "not-a-number")
	t.Setenv("SIMULATED_LATENCY", "1")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.SkipAuth)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 100, cfg.SeedExtensions, "invalid numbers fall back to the default")
	assert.True(t, cfg.SimulatedLatency)
	assert.True(t, cfg.IsProduction())
}
