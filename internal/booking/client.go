// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/swahilipothub/hubclient/internal/platform/apperr"
	"github.com/swahilipothub/hubclient/internal/platform/constants"
)

// Client consumes the booking backend's REST contract.
//
// # Error Mapping
//
// Failures map onto the client error taxonomy:
//
//   - Request never reached the server → [apperr.Connectivity] (generic notice).
//   - Server responded with a structured {error} payload → [apperr.Application],
//     message surfaced verbatim.
//
// Requests are bounded by a client-side timeout and a local rate limiter, and
// honor the caller's context. Once issued they are not cancelable by the
// surface; an unmounted view simply ignores a late response.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient constructs a REST client for the backend at baseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: constants.DefaultRequestTimeout},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(constants.DefaultClientRPS), constants.DefaultClientBurst),
		logger:     logger,
	}
}

// # Operations

// ListRooms fetches the rooms with their availability status computed for
// the given date (YYYY-MM-DD).
func (client *Client) ListRooms(ctx context.Context, date string) ([]Room, error) {
	var rooms []Room
	path := "/rooms?date=" + url.QueryEscape(date)
	if err := client.do(ctx, http.MethodGet, path, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom sends a room creation request and returns the created room as
// the backend recorded it.
func (client *Client) CreateRoom(ctx context.Context, input RoomInput) (*Room, error) {
	var room Room
	if err := client.do(ctx, http.MethodPost, "/rooms", input, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom requests deletion of the room with the given id. The backend
// also discards the room's bookings.
func (client *Client) DeleteRoom(ctx context.Context, id int64) error {
	return client.do(ctx, http.MethodDelete, fmt.Sprintf("/rooms/%d", id), nil, nil)
}

// ListBookings fetches every booking and reservation for the admin view.
func (client *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := client.do(ctx, http.MethodGet, "/admin/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus requests a pending booking's transition to confirmed or
// rejected. The backend decides; the caller patches local state only after
// this returns nil.
func (client *Client) UpdateBookingStatus(ctx context.Context, id int64, status Status) error {
	payload := struct {
		Status Status `json:"status"`
	}{Status: status}

	return client.do(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d/status", id), payload, nil)
}

// # Transport

// errorEnvelope matches the backend's structured error body.
type errorEnvelope struct {
	Error string `json:"error"`
}

// do performs one HTTP exchange against the backend, encoding body (when
// non-nil) as JSON and decoding any 2xx response into target (when non-nil).
func (client *Client) do(ctx context.Context, method, path string, body, target any) error {
	if err := client.limiter.Wait(ctx); err != nil {
		return apperr.Connectivity(err)
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api_encode_failed: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("api_request_build_failed: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Warn("backend_unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return apperr.Connectivity(err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode >= 400 {
		// Surface the server-provided message verbatim when present; fall
		// back to the generic connectivity notice otherwise.
		var envelope errorEnvelope
		_ = json.NewDecoder(response.Body).Decode(&envelope)

		client.logger.Warn("backend_error_response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", response.StatusCode),
		)
		return apperr.Application(envelope.Error, response.StatusCode)
	}

	if target != nil {
		if err := json.NewDecoder(response.Body).Decode(target); err != nil {
			return fmt.Errorf("api_decode_failed: %w", err)
		}
	}

	return nil
}
