// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package admin implements the data synchronization flow behind the
administrator dashboard.

It composes the backend API client and the local session cache into one view
state: rooms for the active query date, every booking, and the mocked
active-session list.

# State Machine

Each activation of the admin surface drives the synchronizer through

	Idle → Loading → Ready
	        Loading → Error

where Error is reached only when every fetch fails; partial failures degrade
to a Ready view with the surviving collections populated.

# Ordering Guarantee

A mutation's local state patch is applied strictly after its triggering
request resolves successfully, never optimistically before.
*/
package admin

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/swahilipothub/hubclient/internal/booking"
	"github.com/swahilipothub/hubclient/internal/session"
)

// State is the synchronizer's position in its per-activation lifecycle.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// API is the backend surface the synchronizer drives. [booking.Client]
// implements it; tests substitute a scripted fake.
type API interface {
	ListRooms(ctx context.Context, date string) ([]booking.Room, error)
	CreateRoom(ctx context.Context, input booking.RoomInput) (*booking.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
	ListBookings(ctx context.Context) ([]booking.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status booking.Status) error
}

// Synchronizer holds the transient view state of the admin surface.
//
// It is owned by the single event loop that renders the surface and is not
// safe for concurrent use.
type Synchronizer struct {
	api      API
	sessions *session.Cache
	logger   *slog.Logger

	state     State
	lastErr   error
	queryDate string

	rooms    []booking.Room
	bookings []booking.Booking
	records  []session.Record
}

// NewSynchronizer constructs an idle synchronizer.
func NewSynchronizer(api API, sessions *session.Cache, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		api:      api,
		sessions: sessions,
		logger:   logger,
		state:    StateIdle,
	}
}

// # Loading

// LoadAll retrieves the three admin collections: rooms with status computed
// for date, all bookings, and the locally persisted session mock. Ordering
// across the fetches is not guaranteed to the caller.
//
// Any individual fetch failure is caught and logged without preventing the
// others from populating; the state becomes Ready regardless. Only when every
// fetch fails does it become Error, with the triggering condition
// retained for display via [Synchronizer.Err].
func (sync *Synchronizer) LoadAll(ctx context.Context, date string) {
	sync.state = StateLoading
	sync.lastErr = nil
	sync.queryDate = date

	failures := 0

	rooms, err := sync.api.ListRooms(ctx, date)
	if err != nil {
		failures++
		sync.lastErr = err
		sync.logger.Error("admin_rooms_fetch_failed",
			slog.String("date", date),
			slog.Any("error", err),
		)
	} else {
		sync.rooms = rooms
	}

	bookings, err := sync.api.ListBookings(ctx)
	if err != nil {
		failures++
		sync.lastErr = err
		sync.logger.Error("admin_bookings_fetch_failed", slog.Any("error", err))
	} else {
		sync.bookings = bookings
	}

	// The session mock is local and its read degrades internally, so this
	// leg always populates.
	sync.records = sync.sessions.Records(ctx)

	if failures == 2 {
		sync.state = StateError
		return
	}
	sync.state = StateReady
}

// # Mutations

// CreateRoom sends a creation request. On success the returned room is
// appended to local room state and handed back so the caller can close its
// creation form. On failure local state is untouched and the error carries
// the server-provided message or the generic connectivity notice.
func (sync *Synchronizer) CreateRoom(ctx context.Context, input booking.RoomInput) (*booking.Room, error) {
	room, err := sync.api.CreateRoom(ctx, input)
	if err != nil {
		return nil, err
	}

	sync.rooms = append(sync.rooms, *room)
	sync.logger.Info("admin_room_created",
		slog.Int64("room_id", room.ID),
		slog.String("name", room.Name),
	)
	return room, nil
}

// DeleteRoom requests deletion of one room. The caller must have obtained an
// explicit confirmation before invoking it; deleting a room also deletes all
// of its bookings server-side.
//
// On success exactly the room with that id is removed from local state, all
// others untouched and order preserved. There is no optimistic removal.
func (sync *Synchronizer) DeleteRoom(ctx context.Context, id int64) error {
	if err := sync.api.DeleteRoom(ctx, id); err != nil {
		return err
	}

	sync.rooms = slices.DeleteFunc(sync.rooms, func(room booking.Room) bool {
		return room.ID == id
	})
	sync.logger.Info("admin_room_deleted", slog.Int64("room_id", id))
	return nil
}

// UpdateBookingStatus requests a pending booking's transition to confirmed or
// rejected. The caller must have obtained an explicit confirmation first.
//
// On success the matching booking is patched in local state; if its date
// falls on the active query date, rooms are re-fetched once so availability
// reflects the decision. On failure booking state is left unchanged.
func (sync *Synchronizer) UpdateBookingStatus(ctx context.Context, id int64, status booking.Status) error {
	if err := sync.api.UpdateBookingStatus(ctx, id, status); err != nil {
		return err
	}

	var decided *booking.Booking
	for index := range sync.bookings {
		if sync.bookings[index].ID == id {
			sync.bookings[index].Status = status
			decided = &sync.bookings[index]
			break
		}
	}

	sync.logger.Info("admin_booking_decided",
		slog.Int64("booking_id", id),
		slog.String("status", string(status)),
	)

	// Booking dates may arrive as full timestamps; a prefix match is the
	// date-equality check.
	if decided != nil && sync.queryDate != "" && strings.HasPrefix(decided.BookingDate, sync.queryDate) {
		rooms, err := sync.api.ListRooms(ctx, sync.queryDate)
		if err != nil {
			// The decision itself succeeded; a failed refresh only leaves
			// room statuses stale until the next load.
			sync.logger.Error("admin_rooms_refresh_failed",
				slog.String("date", sync.queryDate),
				slog.Any("error", err),
			)
			return nil
		}
		sync.rooms = rooms
	}

	return nil
}

// RemoveSessionRecord drops one mocked session record locally and
// re-persists the trimmed collection. The backend is never called; it has no
// visibility into this list.
func (sync *Synchronizer) RemoveSessionRecord(ctx context.Context, id string) error {
	if err := sync.sessions.RemoveRecord(ctx, id); err != nil {
		return err
	}
	sync.records = slices.DeleteFunc(sync.records, func(record session.Record) bool {
		return record.ID == id
	})
	return nil
}

// FormatSessionDuration renders the elapsed time since a record's login
// timestamp, degrading to a sentinel for missing or unparsable values.
func (sync *Synchronizer) FormatSessionDuration(loginTime string) string {
	return sync.sessions.FormatDuration(loginTime)
}

// # View State Accessors

// State reports the synchronizer's lifecycle position.
func (sync *Synchronizer) State() State { return sync.state }

// Err returns the condition that triggered the Error state, or the last
// partial-failure cause while Ready. Nil after a fully clean load.
func (sync *Synchronizer) Err() error { return sync.lastErr }

// QueryDate returns the date the current room list was fetched for.
func (sync *Synchronizer) QueryDate() string { return sync.queryDate }

// Rooms returns a copy of the room view state.
func (sync *Synchronizer) Rooms() []booking.Room { return slices.Clone(sync.rooms) }

// Bookings returns a copy of the booking view state.
func (sync *Synchronizer) Bookings() []booking.Booking { return slices.Clone(sync.bookings) }

// Sessions returns a copy of the mocked session records.
func (sync *Synchronizer) Sessions() []session.Record { return slices.Clone(sync.records) }
