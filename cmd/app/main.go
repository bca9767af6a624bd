package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmwatch.app/internal/app"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Pick up a local .env before reading config
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using process environment")
	}

	// Wire stores, clients and the HTTP server from config
	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Gateway configuration",
		"port", cfg.Server.Port,
		"backend", cfg.Backend.BaseURL,
		"weather", cfg.Weather.BaseURL,
		"session_store", cfg.Session.StoreType.String())

	// Stop on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupGracefulShutdown(cancel, application)

	// Serve until the context is cancelled
	slog.Info("Starting farm dashboard gateway...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Gateway stopped with error", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(cancel context.CancelFunc, application *app.Application) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		slog.Info("Received shutdown signal...")

		// Stop the server loop and the session sweeper
		cancel()

		// Let in-flight requests finish and close the stores
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := application.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}

		os.Exit(0)
	}()
}
