package config

import "time"

// Config holds runtime settings for the Star Market CLI.
//
// Fields:
//   - AuthEndpoint..AdminEndpoint: URLs of the five remote HTTP JSON services.
//   - SessionFile: path of the local SQLite database holding the cached
//     session record.
//   - RouletteSpinDelay: how long the simulated roulette wheel spins before
//     the prize is revealed.
type Config struct {
	AuthEndpoint        string
	TasksEndpoint       string
	MarketplaceEndpoint string
	ExchangeEndpoint    string
	AdminEndpoint       string
	SessionFile         string
	RouletteSpinDelay   time.Duration
}

// LoadDefaults populates c with sensible defaults (a local dev stack).
func (c *Config) LoadDefaults() {
	c.AuthEndpoint = "http://127.0.0.1:8080/api/auth"
	c.TasksEndpoint = "http://127.0.0.1:8080/api/tasks"
	c.MarketplaceEndpoint = "http://127.0.0.1:8080/api/marketplace"
	c.ExchangeEndpoint = "http://127.0.0.1:8080/api/exchange"
	c.AdminEndpoint = "http://127.0.0.1:8080/api/admin"
	c.SessionFile = "session.db"
	c.RouletteSpinDelay = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
