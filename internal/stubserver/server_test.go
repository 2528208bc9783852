// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package stubserver_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swahilipothub/hubclient/internal/booking"
	"github.com/swahilipothub/hubclient/internal/platform/apperr"
	"github.com/swahilipothub/hubclient/internal/stubserver"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestBackend returns a seeded stub behind httptest plus a client wired to
// it. The clock is pinned so date-sensitive behavior is deterministic.
func newTestBackend(t *testing.T) (*stubserver.Server, *booking.Client) {
	t.Helper()

	fixedNow := func() time.Time {
		return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	}

	server := stubserver.New("0", testLogger(), fixedNow)
	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	return server, booking.NewClient(httpServer.URL, testLogger())
}

/*
TestListRooms_StatusComputation verifies the date-scoped availability rules:
a confirmed booking marks the room Booked, a confirmed reservation marks it
Reserved, pending requests leave it Available, and other dates see Available.
*/
func TestListRooms_StatusComputation(t *testing.T) {
	ctx := context.Background()
	server, client := newTestBackend(t)

	server.AddRoom(booking.RoomInput{Name: "Amphitheatre", Space: "Main Building", Capacity: 120})
	server.AddRoom(booking.RoomInput{Name: "Innovation Lab", Space: "Tech Wing", Capacity: 25})
	server.AddRoom(booking.RoomInput{Name: "Board Room", Space: "Admin Block", Capacity: 12})

	server.AddBooking("Amphitheatre", booking.Booking{
		UserName: "Amina", BookingDate: "2024-05-01", Type: booking.TypeBooking, Status: booking.StatusConfirmed,
	})
	server.AddBooking("Innovation Lab", booking.Booking{
		UserName: "David", BookingDate: "2024-05-01", Type: booking.TypeReservation, Status: booking.StatusConfirmed,
	})
	server.AddBooking("Board Room", booking.Booking{
		UserName: "Neema", BookingDate: "2024-05-01", Type: booking.TypeBooking, Status: booking.StatusPending,
	})

	rooms, err := client.ListRooms(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, booking.RoomBooked, rooms[0].Status)
	assert.Equal(t, booking.RoomReserved, rooms[1].Status)
	assert.Equal(t, booking.RoomAvailable, rooms[2].Status)

	// A day with no confirmed activity reads fully available.
	rooms, err = client.ListRooms(ctx, "2024-05-02")
	require.NoError(t, err)
	for _, room := range rooms {
		assert.Equal(t, booking.RoomAvailable, room.Status)
	}
}

/*
TestListRooms_BookingOutranksReservation verifies precedence when one room
carries both a confirmed reservation and a confirmed booking on the same day.
*/
func TestListRooms_BookingOutranksReservation(t *testing.T) {
	server, client := newTestBackend(t)
	server.AddRoom(booking.RoomInput{Name: "Studio", Space: "Annex", Capacity: 8})

	server.AddBooking("Studio", booking.Booking{
		UserName: "Amina", BookingDate: "2024-05-01", Type: booking.TypeReservation, Status: booking.StatusConfirmed,
	})
	server.AddBooking("Studio", booking.Booking{
		UserName: "David", BookingDate: "2024-05-01", Type: booking.TypeBooking, Status: booking.StatusConfirmed,
	})

	rooms, err := client.ListRooms(context.Background(), "2024-05-01")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, booking.RoomBooked, rooms[0].Status)
}

/*
TestListRooms_RejectsMalformedDate verifies the date query validation.
*/
func TestListRooms_RejectsMalformedDate(t *testing.T) {
	_, client := newTestBackend(t)

	_, err := client.ListRooms(context.Background(), "May 1st")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
}

/*
TestCreateRoom covers the creation contract: validation messages for bad
input and a 201 echo for good input.
*/
func TestCreateRoom(t *testing.T) {
	ctx := context.Background()
	_, client := newTestBackend(t)

	tests := []struct {
		name    string
		input   booking.RoomInput
		wantErr string
	}{
		{"missing_name", booking.RoomInput{Space: "Annex", Capacity: 10}, "Room name is required"},
		{"missing_space", booking.RoomInput{Name: "Studio", Capacity: 10}, "Room space is required"},
		{"zero_capacity", booking.RoomInput{Name: "Studio", Space: "Annex"}, "Capacity must be a positive number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateRoom(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, apperr.UserMessage(err))
		})
	}

	t.Run("valid_input", func(t *testing.T) {
		room, err := client.CreateRoom(ctx, booking.RoomInput{Name: "Studio", Space: "Annex", Capacity: 8})
		require.NoError(t, err)
		assert.NotZero(t, room.ID)
		assert.Equal(t, booking.RoomAvailable, room.Status)

		rooms, err := client.ListRooms(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.Len(t, rooms, 1)
	})
}

/*
TestDeleteRoom_CascadesBookings verifies that deleting a room also removes
its bookings, and that unknown rooms yield a 404.
*/
func TestDeleteRoom_CascadesBookings(t *testing.T) {
	ctx := context.Background()
	server, client := newTestBackend(t)

	kept := server.AddRoom(booking.RoomInput{Name: "Amphitheatre", Space: "Main Building", Capacity: 120})
	doomed := server.AddRoom(booking.RoomInput{Name: "Studio", Space: "Annex", Capacity: 8})

	server.AddBooking("Studio", booking.Booking{
		UserName: "Amina", BookingDate: "2024-05-01", Type: booking.TypeBooking, Status: booking.StatusPending,
	})
	server.AddBooking("Amphitheatre", booking.Booking{
		UserName: "David", BookingDate: "2024-05-01", Type: booking.TypeBooking, Status: booking.StatusPending,
	})

	require.NoError(t, client.DeleteRoom(ctx, doomed.ID))

	rooms, err := client.ListRooms(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, kept.ID, rooms[0].ID)

	bookings, err := client.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Amphitheatre", bookings[0].RoomName)

	err = client.DeleteRoom(ctx, doomed.ID)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
	assert.Equal(t, "Room not found", appError.Message)
}

/*
TestUpdateBookingStatus covers the decision contract: only pending bookings
may transition, repeated decisions conflict, and the statuses are restricted
to confirmed and rejected.
*/
func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	server, client := newTestBackend(t)

	server.AddRoom(booking.RoomInput{Name: "Studio", Space: "Annex", Capacity: 8})
	server.AddBooking("Studio", booking.Booking{
		UserName: "Amina", BookingDate: "2024-05-01", Type: booking.TypeBooking, Status: booking.StatusPending,
	})

	t.Run("pending_to_confirmed", func(t *testing.T) {
		require.NoError(t, client.UpdateBookingStatus(ctx, 1, booking.StatusConfirmed))

		bookings, err := client.ListBookings(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, booking.StatusConfirmed, bookings[0].Status)

		// The decision now drives room availability.
		rooms, err := client.ListRooms(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, booking.RoomBooked, rooms[0].Status)
	})

	t.Run("already_decided", func(t *testing.T) {
		err := client.UpdateBookingStatus(ctx, 1, booking.StatusRejected)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
		assert.Equal(t, "Booking has already been decided", appError.Message)
	})

	t.Run("illegal_status", func(t *testing.T) {
		err := client.UpdateBookingStatus(ctx, 1, booking.Status("pending"))
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	})

	t.Run("unknown_booking", func(t *testing.T) {
		err := client.UpdateBookingStatus(ctx, 999, booking.StatusConfirmed)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "Booking not found", appError.Message)
	})
}
