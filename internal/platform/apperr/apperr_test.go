// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swahilipothub/hubclient/internal/platform/apperr"
)

/*
TestConstructors verifies each error code carries its documented message and
HTTP status.
*/
func TestConstructors(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name       string
		err        *apperr.AppError
		wantCode   string
		wantMsg    string
		wantStatus int
	}{
		{"corrupt_state", apperr.CorruptState("theme", cause), "CORRUPT_STATE", "Stored data for theme was unreadable and has been reset", http.StatusInternalServerError},
		{"connectivity", apperr.Connectivity(cause), "CONNECTIVITY", apperr.MsgConnectivity, http.StatusServiceUnavailable},
		{"application", apperr.Application("Room name is required", http.StatusBadRequest), "APPLICATION", "Room name is required", http.StatusBadRequest},
		{"application_empty_message", apperr.Application("", http.StatusBadGateway), "APPLICATION", apperr.MsgConnectivity, http.StatusBadGateway},
		{"validation", apperr.ValidationError("Capacity must be a positive number"), "VALIDATION_ERROR", "Capacity must be a positive number", http.StatusBadRequest},
		{"not_found", apperr.NotFound("Room"), "NOT_FOUND", "Room not found", http.StatusNotFound},
		{"conflict", apperr.Conflict("Booking has already been decided"), "CONFLICT", "Booking has already been decided", http.StatusConflict},
		{"internal", apperr.Internal(cause), "INTERNAL_ERROR", "An unexpected error occurred", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

/*
TestAs_TraversesWrappedChains verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_TraversesWrappedChains(t *testing.T) {
	wrapped := fmt.Errorf("admin_rooms_fetch_failed: %w", apperr.Connectivity(errors.New("dial tcp")))

	assert.True(t, apperr.IsAppError(wrapped))

	extracted := apperr.As(wrapped)
	require.NotNil(t, extracted)
	assert.Equal(t, "CONNECTIVITY", extracted.Code)

	assert.Nil(t, apperr.As(errors.New("plain")))
}

/*
TestUserMessage verifies that only AppError messages reach the user; anything
else degrades to the generic connectivity notice.
*/
func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Room not found", apperr.UserMessage(apperr.NotFound("Room")))
	assert.Equal(t, apperr.MsgConnectivity, apperr.UserMessage(errors.New("pq: relation does not exist")))
}
