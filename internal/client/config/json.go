package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/starmarket/internal/flagx"
	"github.com/dmitrijs2005/starmarket/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	AuthEndpoint        string          `json:"auth_endpoint"`
	TasksEndpoint       string          `json:"tasks_endpoint"`
	MarketplaceEndpoint string          `json:"marketplace_endpoint"`
	ExchangeEndpoint    string          `json:"exchange_endpoint"`
	AdminEndpoint       string          `json:"admin_endpoint"`
	SessionFile         string          `json:"session_file"`
	RouletteSpinDelay   *timex.Duration `json:"roulette_spin_delay"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags (via flagx.JsonConfigFlags); when
// neither is set, nothing is loaded. Read or unmarshal errors panic, same
// as malformed flag values.
//
// Only keys present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthEndpoint != "" {
		cfg.AuthEndpoint = jc.AuthEndpoint
	}
	if jc.TasksEndpoint != "" {
		cfg.TasksEndpoint = jc.TasksEndpoint
	}
	if jc.MarketplaceEndpoint != "" {
		cfg.MarketplaceEndpoint = jc.MarketplaceEndpoint
	}
	if jc.ExchangeEndpoint != "" {
		cfg.ExchangeEndpoint = jc.ExchangeEndpoint
	}
	if jc.AdminEndpoint != "" {
		cfg.AdminEndpoint = jc.AdminEndpoint
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.RouletteSpinDelay != nil {
		cfg.RouletteSpinDelay = jc.RouletteSpinDelay.Duration
	}
}
