package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.CheckIn.ScanInterval)
	assert.Equal(t, "localhost:4280", cfg.Return.ListenAddr)
	assert.Equal(t, "/payment/return", cfg.Return.Path)
	assert.NotEmpty(t, cfg.Session.TokenPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EVENTHUB_API_URL", "https://api.example.com")
	t.Setenv("EVENTHUB_API_TIMEOUT_SECONDS", "5")
	t.Setenv("EVENTHUB_GATE", "Gate 2-B")
	t.Setenv("EVENTHUB_SCAN_INTERVAL_MS", "250")
	t.Setenv("EVENTHUB_TOKEN_FILE", "/tmp/tokens.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "Gate 2-B", cfg.CheckIn.Gate)
	assert.Equal(t, 250*time.Millisecond, cfg.CheckIn.ScanInterval)
	assert.Equal(t, "/tmp/tokens.json", cfg.Session.TokenPath)
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("EVENTHUB_API_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
}
