// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

// Package booking defines the room and booking entities of the Swahilipot
// Hub booking system and the REST client that consumes the backend.
//
// # Architecture
//
// Entities here mirror the backend wire format exactly (snake_case JSON
// field names). The backend owns them; the client holds read-through,
// fetch-refreshed copies with no write authority beyond patching local view
// state after a confirmed remote mutation.
package booking

// Room availability statuses as computed by the backend per query date. The
// client never derives a status itself, it only renders what it fetched.
const (
	RoomAvailable   = "Available"
	RoomReserved    = "Reserved"
	RoomBooked      = "Booked"
	RoomUnavailable = "Unavailable"
)

// Room is a bookable physical space with a date-scoped availability status.
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Space    string `json:"space"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// RoomInput is the creation payload for POST /rooms.
type RoomInput struct {
	Name      string   `json:"name"`
	Space     string   `json:"space"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities,omitempty"`
}

// Type distinguishes an immediate booking from an advance reservation.
type Type string

const (
	TypeBooking     Type = "booking"
	TypeReservation Type = "reservation"
)

// Status is the approval state of a booking. Transitions out of pending are
// requested by the client but authoritatively decided by the backend.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// Booking is a request to occupy a room for a time window, subject to
// administrator approval.
type Booking struct {
	ID          int64  `json:"id"`
	UserName    string `json:"user_name"`
	RoomName    string `json:"room_name"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Type        Type   `json:"type"`
	Status      Status `json:"status"`
}
