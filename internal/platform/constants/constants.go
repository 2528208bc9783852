// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package constants provides centralized, immutable values for the booking client.

It defines default timeouts, storage keys, and cross-cutting identifiers that
are shared between different layers of the application.

Categories:

  - Storage Keys: Names of the persisted local state entries.
  - Client Timing: Request timeout and rate-limit defaults.
  - Stub Server Timing: Read/Write/Idle timeouts for the development backend.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "hubclient"
	AppVersion = "0.1.0-dev"
)

// # Storage Keys
//
// Each key maps to a JSON-encoded entry in the local key-value store.
// Absence of any key is a valid, handled state, never a fatal error.

const (
	// StorageKeyIdentity holds the signed-in user payload.
	StorageKeyIdentity = "user"

	// StorageKeySessions holds the locally mocked active-session list.
	StorageKeySessions = "activeSessions"

	// StorageKeyTheme holds the persisted theme preference.
	StorageKeyTheme = "theme"

	// StorageKeyLanguage holds the persisted language preference.
	StorageKeyLanguage = "language"
)

// # Client Timing

const (
	// DefaultRequestTimeout bounds every backend call. The backend contract
	// specifies no timeout policy; this client-side bound keeps a hung
	// request from pinning the surface in Loading forever.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultClientRPS is the requests per second the client allows itself
	// against the backend.
	DefaultClientRPS = 10.0

	// DefaultClientBurst is the maximum request burst for the client limiter.
	DefaultClientBurst = 20
)

// # Stub Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Wire Formats

const (
	// DateLayout is the YYYY-MM-DD layout the backend expects for room queries.
	DateLayout = "2006-01-02"

	// HeaderXRequestID carries the correlation ID on stub server responses.
	HeaderXRequestID = "X-Request-ID"
)

// # Redis Prefixes (State Taxonomy)

const (
	// RedisPrefixState namespaces every local-state entry stored in Redis so
	// a shared instance can host multiple client installations.
	RedisPrefixState = "hubclient:state:"
)
