package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/worklog/timesheet-dashboard/internal/app"
	"github.com/worklog/timesheet-dashboard/internal/infrastructure/config"
	"github.com/worklog/timesheet-dashboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "timesheet-dashboard",
	})

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create app")
	}

	if err := a.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("run app")
	}
}
