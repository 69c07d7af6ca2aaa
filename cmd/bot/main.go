package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/recondesk/lookup-bot/internal/artifact"
	"github.com/recondesk/lookup-bot/internal/bot"
	"github.com/recondesk/lookup-bot/internal/config"
	"github.com/recondesk/lookup-bot/internal/gateway"
	"github.com/recondesk/lookup-bot/internal/logger"
	"github.com/recondesk/lookup-bot/internal/lookup"
	"github.com/recondesk/lookup-bot/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingToken) {
			fmt.Println("Error: BOT_TOKEN not set in environment variables!")
			fmt.Println("Please set BOT_TOKEN in the environment")
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	gw, err := gateway.New(cfg.BotToken, log)
	if err != nil {
		log.Error("failed to create gateway", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("authorized", slog.String("username", gw.Username()))

	poller, err := gateway.NewPoller(cfg.BotToken, log)
	if err != nil {
		log.Error("failed to create poller", slog.Any("error", err))
		os.Exit(1)
	}

	lookups := lookup.NewClient(cfg.Lookup, log)
	artifacts := artifact.New(gw, artifact.Config{}, log)

	// Keep-alive endpoint for external uptime probes.
	health := server.New(cfg.Port)
	go func() {
		if err := health.Start(); err != nil {
			log.Error("health server stopped", slog.Any("error", err))
		}
	}()

	bot.New(poller, gw, artifacts, lookups, log).Run()
}
