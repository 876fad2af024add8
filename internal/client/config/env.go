package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present; real
// environment variables win over .env entries (godotenv does not overwrite).
//
// Supported variables:
//
//	STARMARKET_AUTH_ENDPOINT
//	STARMARKET_TASKS_ENDPOINT
//	STARMARKET_MARKETPLACE_ENDPOINT
//	STARMARKET_EXCHANGE_ENDPOINT
//	STARMARKET_ADMIN_ENDPOINT
//	STARMARKET_SESSION_FILE
//	STARMARKET_SPIN_DELAY (Go duration string, e.g. "3s")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("STARMARKET_AUTH_ENDPOINT"); v != "" {
		cfg.AuthEndpoint = v
	}
	if v := os.Getenv("STARMARKET_TASKS_ENDPOINT"); v != "" {
		cfg.TasksEndpoint = v
	}
	if v := os.Getenv("STARMARKET_MARKETPLACE_ENDPOINT"); v != "" {
		cfg.MarketplaceEndpoint = v
	}
	if v := os.Getenv("STARMARKET_EXCHANGE_ENDPOINT"); v != "" {
		cfg.ExchangeEndpoint = v
	}
	if v := os.Getenv("STARMARKET_ADMIN_ENDPOINT"); v != "" {
		cfg.AdminEndpoint = v
	}
	if v := os.Getenv("STARMARKET_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("STARMARKET_SPIN_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RouletteSpinDelay = d
		}
	}
}
