// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

// Package main is the entry point for the Sofra server.
//
// Sofra serves a restaurant's menu catalog over a small REST API:
// faceted filtering and sorting driven entirely by the URL query
// string, per-visitor preference tracking, and time-of-day aware
// dish recommendations.
//
// The server initializes components in the following order:
//
//  1. Configuration: built-in defaults, optional YAML file, then
//     SOFRA_-prefixed environment variables (Koanf v2)
//  2. Logging: zerolog, JSON or console format
//  3. Catalog: the immutable menu document, loaded once and validated
//  4. Preference store: BadgerDB (or in-memory for development)
//  5. HTTP server: Chi router with graceful shutdown on SIGINT/SIGTERM
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/sofra-kitchen/sofra/internal/api"
	"github.com/sofra-kitchen/sofra/internal/config"
	"github.com/sofra-kitchen/sofra/internal/hours"
	"github.com/sofra-kitchen/sofra/internal/logging"
	"github.com/sofra-kitchen/sofra/internal/menu"
	"github.com/sofra-kitchen/sofra/internal/prefs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalog", cfg.Catalog.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting Sofra")

	catalog, err := menu.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading menu catalog: %w", err)
	}
	logging.Info().
		Int("items", catalog.Len()).
		Int("categories", len(catalog.Categories())).
		Msg("Menu catalog loaded")

	schedule, err := hours.Parse(cfg.Hours)
	if err != nil {
		return fmt.Errorf("parsing opening hours: %w", err)
	}

	var backend prefs.Backend
	if cfg.Storage.InMemory {
		logging.Warn().Msg("Using in-memory preference storage; records will not survive a restart")
		backend = prefs.NewMemoryBackend()
	} else {
		opts := badger.DefaultOptions(cfg.Storage.Path).WithLogger(nil)
		db, err := badger.Open(opts)
		if err != nil {
			return fmt.Errorf("opening preference store at %s: %w", cfg.Storage.Path, err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing preference store")
			}
		}()
		backend = prefs.NewBadgerBackend(db)
	}

	store := prefs.NewStore(backend)
	tracker := prefs.NewTracker(store, nil)

	handler := api.NewHandler(catalog, store, tracker, schedule, cfg.Recommend, nil)
	middleware := api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})
	router := api.NewRouter(handler, middleware)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}

	logging.Info().Msg("Shutdown complete")
	return nil
}
