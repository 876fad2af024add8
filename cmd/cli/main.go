package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/starmarket/internal/buildinfo"
	"github.com/dmitrijs2005/starmarket/internal/client/cli"
	"github.com/dmitrijs2005/starmarket/internal/client/config"
	"github.com/dmitrijs2005/starmarket/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Logs go to stderr at Warn so they don't interleave with the REPL.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
