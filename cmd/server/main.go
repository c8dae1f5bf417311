package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-print"

	"github.com/goliatone/go-tasks/auth"
	"github.com/goliatone/go-tasks/config"
	"github.com/goliatone/go-tasks/internal/logutil"
	"github.com/goliatone/go-tasks/persistence"
	"github.com/goliatone/go-tasks/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logutil.New(cfg.LogLevel)

	if cfg.Debug {
		fmt.Println(print.MaybeHighlightJSON(cfg))
	}

	db, err := persistence.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := persistence.CreateSchema(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("failed to create schema")
	}

	repo := auth.NewRepositoryManager(db)
	srv := server.New(cfg, repo, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}
}
