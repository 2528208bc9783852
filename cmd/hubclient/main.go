// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

// Command hubclient is the terminal client for the Swahilipot Hub
// room-booking system.
//
// # Startup Sequence
//
//  1. Initialize structured logger (stderr, so the surface owns stdout).
//  2. Load configuration from environment variables.
//  3. Open the local key-value state backend (memory, sqlite or redis).
//  4. Wire the preference store, session cache, API client and synchronizer.
//  5. Run the terminal shell until quit or interrupt.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swahilipothub/hubclient/internal/admin"
	"github.com/swahilipothub/hubclient/internal/booking"
	"github.com/swahilipothub/hubclient/internal/platform/config"
	"github.com/swahilipothub/hubclient/internal/platform/constants"
	"github.com/swahilipothub/hubclient/internal/platform/storage"
	"github.com/swahilipothub/hubclient/internal/prefs"
	"github.com/swahilipothub/hubclient/internal/session"
	"github.com/swahilipothub/hubclient/internal/ui"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Logs go to stderr so the rendered surface keeps stdout to itself.
	rawLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(
		slog.String("app", constants.AppName),
		slog.String("version", constants.AppVersion),
	)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(
			slog.String("app", constants.AppName),
			slog.String("version", constants.AppVersion),
		)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("backend_url", cfg.BackendURL),
		slog.String("storage_backend", cfg.StorageBackend),
	)

	// Root context canceled by interrupt so an in-flight prompt unblocks.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// ── 3. Local State Backend ────────────────────────────────────────────
	startupCtx, startupCancel := context.WithTimeout(ctx, 30*time.Second)
	defer startupCancel()

	store, closeStore, err := storage.Open(startupCtx, cfg, log)
	must(log, err, "open state backend")
	defer func() {
		if cerr := closeStore(); cerr != nil {
			log.Error("state backend close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Component Wiring ───────────────────────────────────────────────
	surface := &ui.Surface{}

	colorScheme := func() prefs.Theme {
		if cfg.ColorScheme == string(prefs.ThemeDark) {
			return prefs.ThemeDark
		}
		return prefs.ThemeLight
	}

	preferences := prefs.NewStore(store, colorScheme, surface.Mark, log)
	sessions := session.NewCache(store, time.Now, log)
	api := booking.NewClient(cfg.BackendURL, log)
	synchronizer := admin.NewSynchronizer(api, sessions, log)

	today := func() string { return time.Now().Format(constants.DateLayout) }

	shell := ui.NewShell(os.Stdin, os.Stdout, surface, preferences, sessions, synchronizer, today, log)

	// ── 5. Event Loop ─────────────────────────────────────────────────────
	if err := shell.Run(ctx); err != nil {
		log.Error("shell error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("client stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
