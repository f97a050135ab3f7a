package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_MAX_CONN_LIFETIME", "")
	t.Setenv("CHECKPOINT_INTERVAL", "")
	t.Setenv("VALIDATE_CHARTS", "")

	cfg := LoadConfig()

	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.MaxConnLifetime)
	assert.Equal(t, 50, cfg.Pipeline.CheckpointInterval)
	assert.True(t, cfg.Pipeline.ValidateCharts)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/features")
	t.Setenv("CHECKPOINT_INTERVAL", "25")
	t.Setenv("VALIDATE_CHARTS", "false")
	t.Setenv("DB_MAX_CONNS", "8")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "postgres://localhost/features", cfg.Database.DSN)
	assert.Equal(t, 25, cfg.Pipeline.CheckpointInterval)
	assert.False(t, cfg.Pipeline.ValidateCharts)
	assert.Equal(t, int32(8), cfg.Database.MaxConns)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	cfg.Database.DSN = "postgres://localhost/features"
	err = cfg.Validate()
	require.Error(t, err, "zero checkpoint interval rejected")

	cfg.Pipeline.CheckpointInterval = 50
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CHECKPOINT_INTERVAL", "lots")
	t.Setenv("VALIDATE_CHARTS", "yep")

	cfg := LoadConfig()
	assert.Equal(t, 50, cfg.Pipeline.CheckpointInterval)
	assert.True(t, cfg.Pipeline.ValidateCharts)
}
