package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/ginrummy/internal/bot"
	"github.com/fadedpez/ginrummy/internal/config"
	"github.com/fadedpez/ginrummy/internal/discord"
	"github.com/fadedpez/ginrummy/internal/logging"
	"github.com/fadedpez/ginrummy/pkg/repositories/round"
	"github.com/fadedpez/ginrummy/pkg/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := cfg.ValidateDiscord(); err != nil {
		log.Fatalf("Invalid Discord configuration: %v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Printf("%v, using INFO", err)
	}
	logger := logging.NewLogger(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rounds, err := round.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Error opening round storage: %v", err)
	}
	defer rounds.Close()

	maintenance := scheduler.NewMaintenanceScheduler(rounds, cfg.PruneInterval, cfg.RoundRetention, logger)
	maintenance.Start(ctx)
	defer maintenance.Stop()

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	b := bot.New(cfg, session, rounds, logger)
	if err := b.Start(); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	logger.Info("Bot is running. Press Ctrl+C to exit")

	// Wait for interrupt signal to gracefully shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	b.Shutdown()
}
