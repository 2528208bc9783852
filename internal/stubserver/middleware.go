// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package stubserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/swahilipothub/hubclient/internal/platform/constants"
)

// # Request Tracing

// requestID attaches a correlation ID to every request for log tracing.
func requestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Check if the client already provided an ID
			correlationID := request.Header.Get(constants.HeaderXRequestID)

			// 2. Generate a new one if missing (UUID v7 for time-sortable properties)
			if correlationID == "" {
				if uuidV7, err := uuid.NewV7(); err == nil {
					correlationID = uuidV7.String()
				} else {
					correlationID = uuid.New().String()
				}
			}

			// 3. Echo on the response for correlation
			writer.Header().Set(constants.HeaderXRequestID, correlationID)

			next.ServeHTTP(writer, request)
		})
	}
}

// # Activity Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// structuredLogger logs every request status and latency.
func structuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrappedWriter, request)

			logLevel := slog.LevelInfo
			if wrappedWriter.status >= 500 {
				logLevel = slog.LevelError
			} else if wrappedWriter.status >= 400 {
				logLevel = slog.LevelWarn
			}

			logger.Log(request.Context(), logLevel, "http_request_finished",
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.Int("status", wrappedWriter.status),
				slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
			)
		})
	}
}

// # Panic Recovery

// panicRecovery keeps a handler panic from killing the stub process.
func panicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("stub_handler_panic", slog.Any("panic", recovered))
					writeJSON(writer, http.StatusInternalServerError, errorEnvelope{
						Error: "An unexpected error occurred",
						Code:  "INTERNAL_ERROR",
					})
				}
			}()
			next.ServeHTTP(writer, request)
		})
	}
}
