// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package apperr defines the centralized error handling framework for the
booking client.

It provides a rich error type that bridges the gap between low-level failures
(corrupt local state, unreachable backend) and the user-visible notices the
terminal surface renders.

Architecture:

  - AppError: A struct containing a machine-readable ErrorCode and a
    user-friendly, client-safe message.
  - Taxonomy: Corrupt-state, connectivity, application and validation errors
    are distinct codes so the surface can render each appropriately.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes for
    the development stub backend.

Every error that leaves a service layer should be wrapped as an [AppError] to
ensure consistent user-facing notices.
*/
package apperr

import (
	"errors"
	"net/http"
)

// MsgConnectivity is the generic notice shown when a request never reached
// the backend. Connectivity causes are logged, never rendered.
const MsgConnectivity = "Error connecting to server"

// AppError is the canonical error type for the booking client.
//
// It carries a machine-readable code, a user-safe message, an HTTP status
// (used only by the stub backend when responding), and an optional cause.
//
// # Security
//
// The Cause field is for logging only and is never rendered to the user to
// avoid leaking internal implementation details.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "CONNECTIVITY").
	Code string `json:"code"`
	// Message is a human-readable description safe to render to the user.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code (stub backend only).
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
}

// Error implements the error interface. It returns the user-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client-Side Errors

// CorruptState creates an [AppError] for persisted local state that failed to
// decode. The caller is expected to discard the corrupt entry and substitute
// a default, so this error is mostly informational.
func CorruptState(key string, cause error) *AppError {
	return &AppError{
		Code:       "CORRUPT_STATE",
		Message:    "Stored data for " + key + " was unreadable and has been reset",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Connectivity creates an [AppError] for a request that never reached the
// backend. The message is intentionally generic.
func Connectivity(cause error) *AppError {
	return &AppError{
		Code:       "CONNECTIVITY",
		Message:    MsgConnectivity,
		HTTPStatus: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// Application creates an [AppError] carrying a structured error message the
// backend returned. The message is surfaced to the user verbatim.
func Application(message string, httpStatus int) *AppError {
	if message == "" {
		message = MsgConnectivity
	}
	return &AppError{
		Code:       "APPLICATION",
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// ValidationError creates a 400 [AppError] for malformed or incomplete input.
func ValidationError(msg string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// # Stub Backend Errors (4xx/5xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Room") // Returns "Room not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Conflict creates a 409 [AppError] for requests that contradict the current
// resource state (e.g. deciding a booking that is no longer pending).
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// UserMessage returns the user-safe notice for any error. Errors that are not
// an [*AppError] degrade to the generic connectivity notice rather than
// exposing internals.
func UserMessage(err error) string {
	if ae := As(err); ae != nil {
		return ae.Message
	}
	return MsgConnectivity
}
