// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package stubserver is an in-memory development stand-in for the booking
backend.

It implements exactly the REST contract the client consumes:

	GET    /rooms?date=YYYY-MM-DD
	POST   /rooms
	DELETE /rooms/{id}
	GET    /admin/bookings
	PUT    /bookings/{id}/status

The real backend remains an external collaborator; this stub exists so the
client is runnable and integration-testable without it. Room availability is
computed per query date from confirmed bookings, which is the one piece of
server-side behavior the client's rendering depends on.
*/
package stubserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/swahilipothub/hubclient/internal/booking"
	"github.com/swahilipothub/hubclient/internal/platform/apperr"
	"github.com/swahilipothub/hubclient/internal/platform/constants"
)

// bookingRecord pairs a wire-format booking with the room it occupies.
type bookingRecord struct {
	booking.Booking
	roomID int64
}

// Server holds the in-memory dataset and the HTTP layer above it.
type Server struct {
	logger *slog.Logger
	now    func() time.Time

	mu            sync.Mutex
	rooms         []booking.Room
	bookings      []bookingRecord
	nextRoomID    int64
	nextBookingID int64

	httpServer *http.Server
}

// New constructs an empty stub backend listening on the given port. now may
// be nil, defaulting to [time.Now].
func New(port string, logger *slog.Logger, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}

	server := &Server{
		logger:        logger,
		now:           now,
		nextRoomID:    1,
		nextBookingID: 1,
	}

	router := chi.NewRouter()
	router.Use(requestID())
	router.Use(structuredLogger(logger))
	router.Use(panicRecovery(logger))

	router.Get("/rooms", server.handleListRooms)
	router.Post("/rooms", server.handleCreateRoom)
	router.Delete("/rooms/{id}", server.handleDeleteRoom)
	router.Get("/admin/bookings", server.handleListBookings)
	router.Put("/bookings/{id}/status", server.handleUpdateBookingStatus)

	server.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       constants.DefaultReadTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
	}

	return server
}

// Handler exposes the router for httptest-based integration tests.
func (server *Server) Handler() http.Handler { return server.httpServer.Handler }

// ListenAndServe starts the stub. It blocks until the server is closed.
func (server *Server) ListenAndServe() error {
	server.logger.Info("stub backend starting", slog.String("addr", server.httpServer.Addr))
	return server.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the stub, waiting for in-flight requests.
func (server *Server) Shutdown(timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.httpServer.Shutdown(shutdownCtx)
}

// # Seeding

// AddRoom inserts a room directly, bypassing HTTP. Used for seeding.
func (server *Server) AddRoom(input booking.RoomInput) booking.Room {
	server.mu.Lock()
	defer server.mu.Unlock()
	return server.addRoomLocked(input)
}

// AddBooking inserts a booking for the named room, bypassing HTTP. Unknown
// room names are ignored; seeding is best-effort.
func (server *Server) AddBooking(roomName string, entry booking.Booking) {
	server.mu.Lock()
	defer server.mu.Unlock()

	for _, room := range server.rooms {
		if room.Name == roomName {
			entry.ID = server.nextBookingID
			entry.RoomName = room.Name
			server.nextBookingID++
			server.bookings = append(server.bookings, bookingRecord{Booking: entry, roomID: room.ID})
			return
		}
	}
}

func (server *Server) addRoomLocked(input booking.RoomInput) booking.Room {
	room := booking.Room{
		ID:       server.nextRoomID,
		Name:     input.Name,
		Space:    input.Space,
		Capacity: input.Capacity,
		Status:   booking.RoomAvailable,
	}
	server.nextRoomID++
	server.rooms = append(server.rooms, room)
	return room
}

// # Handlers

// handleListRooms returns every room with its status computed for the query
// date. The client never derives availability; it renders what this returns.
func (server *Server) handleListRooms(writer http.ResponseWriter, request *http.Request) {
	date := request.URL.Query().Get("date")
	if date == "" {
		date = server.now().Format(constants.DateLayout)
	}
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		writeError(writer, server.logger, apperr.ValidationError("date must be formatted YYYY-MM-DD"))
		return
	}

	server.mu.Lock()
	defer server.mu.Unlock()

	rooms := make([]booking.Room, 0, len(server.rooms))
	for _, room := range server.rooms {
		room.Status = server.roomStatusLocked(room.ID, date)
		rooms = append(rooms, room)
	}

	writeJSON(writer, http.StatusOK, rooms)
}

// roomStatusLocked derives a room's date-scoped status from its confirmed
// bookings. A confirmed immediate booking outranks a reservation.
func (server *Server) roomStatusLocked(roomID int64, date string) string {
	status := booking.RoomAvailable
	for _, record := range server.bookings {
		if record.roomID != roomID || record.Status != booking.StatusConfirmed {
			continue
		}
		if !strings.HasPrefix(record.BookingDate, date) {
			continue
		}
		if record.Type == booking.TypeBooking {
			return booking.RoomBooked
		}
		status = booking.RoomReserved
	}
	return status
}

// handleCreateRoom validates and stores a new room, echoing it back with 201.
func (server *Server) handleCreateRoom(writer http.ResponseWriter, request *http.Request) {
	var input booking.RoomInput
	if err := decodeJSON(request, &input); err != nil {
		writeError(writer, server.logger, err)
		return
	}

	switch {
	case strings.TrimSpace(input.Name) == "":
		writeError(writer, server.logger, apperr.ValidationError("Room name is required"))
		return
	case strings.TrimSpace(input.Space) == "":
		writeError(writer, server.logger, apperr.ValidationError("Room space is required"))
		return
	case input.Capacity <= 0:
		writeError(writer, server.logger, apperr.ValidationError("Capacity must be a positive number"))
		return
	}

	server.mu.Lock()
	room := server.addRoomLocked(input)
	server.mu.Unlock()

	writeJSON(writer, http.StatusCreated, room)
}

// handleDeleteRoom removes a room and, with it, all of its bookings.
func (server *Server) handleDeleteRoom(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	if err != nil {
		writeError(writer, server.logger, apperr.NotFound("Room"))
		return
	}

	server.mu.Lock()
	defer server.mu.Unlock()

	index := -1
	for position, room := range server.rooms {
		if room.ID == id {
			index = position
			break
		}
	}
	if index < 0 {
		writeError(writer, server.logger, apperr.NotFound("Room"))
		return
	}

	server.rooms = append(server.rooms[:index], server.rooms[index+1:]...)

	remaining := server.bookings[:0]
	for _, record := range server.bookings {
		if record.roomID != id {
			remaining = append(remaining, record)
		}
	}
	server.bookings = remaining

	writeJSON(writer, http.StatusOK, map[string]string{"message": "Room deleted"})
}

// handleListBookings returns every booking and reservation.
func (server *Server) handleListBookings(writer http.ResponseWriter, request *http.Request) {
	server.mu.Lock()
	defer server.mu.Unlock()

	bookings := make([]booking.Booking, 0, len(server.bookings))
	for _, record := range server.bookings {
		bookings = append(bookings, record.Booking)
	}

	writeJSON(writer, http.StatusOK, bookings)
}

// statusUpdateInput is the PUT /bookings/{id}/status request body.
type statusUpdateInput struct {
	Status booking.Status `json:"status"`
}

// handleUpdateBookingStatus decides a pending booking. Only the
// pending→confirmed and pending→rejected transitions are legal.
func (server *Server) handleUpdateBookingStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	if err != nil {
		writeError(writer, server.logger, apperr.NotFound("Booking"))
		return
	}

	var input statusUpdateInput
	if err := decodeJSON(request, &input); err != nil {
		writeError(writer, server.logger, err)
		return
	}
	if input.Status != booking.StatusConfirmed && input.Status != booking.StatusRejected {
		writeError(writer, server.logger, apperr.ValidationError("status must be confirmed or rejected"))
		return
	}

	server.mu.Lock()
	defer server.mu.Unlock()

	for index := range server.bookings {
		record := &server.bookings[index]
		if record.ID != id {
			continue
		}
		if record.Status != booking.StatusPending {
			writeError(writer, server.logger, apperr.Conflict("Booking has already been decided"))
			return
		}
		record.Status = input.Status
		writeJSON(writer, http.StatusOK, map[string]string{"message": "Booking " + string(input.Status)})
		return
	}

	writeError(writer, server.logger, apperr.NotFound("Booking"))
}

// decodeJSON reads the request body into target, mapping failures to a
// client-safe validation error.
func decodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return apperr.ValidationError("Request body is not valid JSON")
	}
	return nil
}
