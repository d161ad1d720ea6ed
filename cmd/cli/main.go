package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/airlineempire/cli/internal/buildinfo"
	"github.com/airlineempire/cli/internal/cli"
	"github.com/airlineempire/cli/internal/config"
	"github.com/airlineempire/cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
