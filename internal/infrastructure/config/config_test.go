package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 1000.0, cfg.Simulation.StartingCredits)
	assert.Equal(t, 8*time.Hour, cfg.Simulation.MaxOffline)
	assert.Equal(t, 0.5, cfg.Simulation.OfflineEfficiency)
	assert.Equal(t, 5*time.Second, cfg.Simulation.Intervals.Logistics)
	assert.Equal(t, 30*time.Second, cfg.Simulation.Intervals.Autosave)
	assert.Equal(t, "file", cfg.Persistence.Backend)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "spacerush.pid", cfg.Persistence.LockFile)
	assert.Equal(t, 200, cfg.Persistence.HistoryLimit)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.Equal(t, 5*time.Second, cfg.Metrics.PollInterval)
	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	// Arrange
	path := writeConfig(t, `
simulation:
  starting_credits: 250
  intervals:
    market: 10s
persistence:
  backend: database
  compression: zstd
  slot: alpha
logging:
  level: debug
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 250.0, cfg.Simulation.StartingCredits)
	assert.Equal(t, 10*time.Second, cfg.Simulation.Intervals.Market)
	assert.Equal(t, time.Second, cfg.Simulation.Intervals.Production)
	assert.Equal(t, "database", cfg.Persistence.Backend)
	assert.Equal(t, "zstd", cfg.Persistence.Compression)
	assert.Equal(t, "alpha", cfg.Persistence.Slot)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	// Arrange
	path := writeConfig(t, "simulation:\n  starting_credits: 250\n")
	t.Setenv("SR_SIMULATION_STARTING_CREDITS", "5000")
	t.Setenv("SR_PERSISTENCE_COMPRESSION", "lz4")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5000.0, cfg.Simulation.StartingCredits)
	assert.Equal(t, "lz4", cfg.Persistence.Compression)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown compression", "persistence:\n  compression: brotli\n"},
		{"unknown backend", "persistence:\n  backend: s3\n"},
		{"efficiency above one", "simulation:\n  offline_efficiency: 1.5\n"},
		{"file output without path", "logging:\n  output: file\n"},
		{"unknown log level", "logging:\n  level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.body))

			assert.Error(t, err)
		})
	}
}

func TestLoadConfigOrDefault_FallsBackOnError(t *testing.T) {
	cfg := config.LoadConfigOrDefault(writeConfig(t, "persistence:\n  backend: s3\n"))

	assert.Equal(t, "file", cfg.Persistence.Backend)
}
