// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package stubserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/swahilipothub/hubclient/internal/platform/apperr"
)

// errorEnvelope is the JSON error body of the backend contract. Clients read
// the "error" field; "code" is additional machine-readable detail.
type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// writeError converts any Go error into the contract's {error} body.
func writeError(writer http.ResponseWriter, logger *slog.Logger, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the
		// client.
		logger.Error("stub_unhandled_error", slog.Any("error", err))
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		logger.Error("stub_server_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	writeJSON(writer, appError.HTTPStatus, errorEnvelope{
		Error: appError.Message,
		Code:  appError.Code,
	})
}
