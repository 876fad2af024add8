package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/starmarket/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-auth string      auth service endpoint URL
//	-tasks string     tasks service endpoint URL
//	-market string    marketplace service endpoint URL
//	-exchange string  exchange service endpoint URL
//	-admin string     admin service endpoint URL
//	-s string         path to the local session database
//	-spin int         roulette spin delay in seconds
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-auth", "-tasks", "-market", "-exchange", "-admin", "-s", "-spin",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthEndpoint, "auth", cfg.AuthEndpoint, "auth service endpoint")
	fs.StringVar(&cfg.TasksEndpoint, "tasks", cfg.TasksEndpoint, "tasks service endpoint")
	fs.StringVar(&cfg.MarketplaceEndpoint, "market", cfg.MarketplaceEndpoint, "marketplace service endpoint")
	fs.StringVar(&cfg.ExchangeEndpoint, "exchange", cfg.ExchangeEndpoint, "exchange service endpoint")
	fs.StringVar(&cfg.AdminEndpoint, "admin", cfg.AdminEndpoint, "admin service endpoint")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "path to the local session database")
	spinDelay := fs.Int("spin", int(cfg.RouletteSpinDelay.Seconds()), "roulette spin delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RouletteSpinDelay = time.Duration(*spinDelay) * time.Second
}
