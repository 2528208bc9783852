// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

// Command stubserver runs the in-memory development stand-in for the booking
// backend, pre-seeded with a few rooms and pending bookings so the client
// has something to render out of the box.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swahilipothub/hubclient/internal/booking"
	"github.com/swahilipothub/hubclient/internal/platform/config"
	"github.com/swahilipothub/hubclient/internal/platform/constants"
	"github.com/swahilipothub/hubclient/internal/stubserver"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "stubserver"))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Error("startup failure", slog.Any("error", err))
		os.Exit(1)
	}

	// ── 3. Server + Seed Data ─────────────────────────────────────────────
	server := stubserver.New(cfg.StubPort, log, nil)
	seed(server)

	// ── 4. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// seed loads a small realistic dataset: the hub's usual spaces plus pending
// requests an administrator can decide on.
func seed(server *stubserver.Server) {
	today := time.Now().Format(constants.DateLayout)

	server.AddRoom(booking.RoomInput{Name: "Amphitheatre", Space: "Main Building", Capacity: 120})
	server.AddRoom(booking.RoomInput{Name: "Innovation Lab", Space: "Tech Wing", Capacity: 25})
	server.AddRoom(booking.RoomInput{Name: "Board Room", Space: "Admin Block", Capacity: 12})

	server.AddBooking("Innovation Lab", booking.Booking{
		UserName:    "Amina Yusuf",
		BookingDate: today,
		StartTime:   "09:00",
		EndTime:     "11:00",
		Type:        booking.TypeBooking,
		Status:      booking.StatusPending,
	})
	server.AddBooking("Board Room", booking.Booking{
		UserName:    "David Otieno",
		BookingDate: today,
		StartTime:   "14:00",
		EndTime:     "15:30",
		Type:        booking.TypeReservation,
		Status:      booking.StatusPending,
	})
}
