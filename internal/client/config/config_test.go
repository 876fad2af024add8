package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api/auth", c.AuthEndpoint)
	assert.Equal(t, "http://127.0.0.1:8080/api/tasks", c.TasksEndpoint)
	assert.Equal(t, "http://127.0.0.1:8080/api/marketplace", c.MarketplaceEndpoint)
	assert.Equal(t, "http://127.0.0.1:8080/api/exchange", c.ExchangeEndpoint)
	assert.Equal(t, "http://127.0.0.1:8080/api/admin", c.AdminEndpoint)
	assert.Equal(t, "session.db", c.SessionFile)
	assert.Equal(t, 3*time.Second, c.RouletteSpinDelay)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080/api/exchange", cfg.ExchangeEndpoint)
	assert.Equal(t, 3*time.Second, cfg.RouletteSpinDelay)
}
