// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package session caches the signed-in identity and the locally mocked
active-session list.

# Trust Model

The client trusts the locally cached role flag; there is no server-side
authorization enforcement in this layer. A corrupt identity payload is
discarded and replaced with a default anonymous identity (fail-safe, not
fail-loud), and the user is treated as signed out.

# Known Limitation

The active-session list is a local mock with remove-only semantics. The
backend has no visibility into it and it may diverge from real session state.
It is kept as a placeholder until server-side session tracking exists.
*/
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swahilipothub/hubclient/internal/platform/apperr"
	"github.com/swahilipothub/hubclient/internal/platform/constants"
	"github.com/swahilipothub/hubclient/internal/platform/storage"
)

// RoleAdmin is the role flag that gates the administrator surface.
const RoleAdmin = "admin"

// Sentinel values returned by [Cache.FormatDuration].
const (
	DurationUnknown = "Unknown"
	DurationInvalid = "Invalid"
)

// ErrUnauthenticated reports that no identity is cached. Callers redirect to
// the login surface when they see it.
var ErrUnauthenticated = errors.New("session: not signed in")

// ErrRoleMismatch reports that the cached identity lacks the required role.
var ErrRoleMismatch = errors.New("session: role not permitted")

// Identity is the cached representation of the signed-in user.
type Identity struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}

// Anonymous is the identity substituted when nothing (valid) is cached.
func Anonymous() Identity {
	return Identity{FullName: "User"}
}

// Record is one entry of the locally mocked active-session list.
//
// LoginTime stays a string on the wire because historical entries written by
// other clients may carry timestamps this client cannot parse; formatting
// degrades to a sentinel instead of failing.
type Record struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	LoginTime string `json:"loginTime"`
	Status    string `json:"status"`
}

// Cache owns the persisted identity and session-record entries. Like the
// preference store it is constructed once at the application root.
type Cache struct {
	kv     storage.Store
	now    func() time.Time
	logger *slog.Logger
}

// NewCache constructs a session cache on the given state backend. now may be
// nil, defaulting to [time.Now].
func NewCache(kv storage.Store, now func() time.Time, logger *slog.Logger) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{kv: kv, now: now, logger: logger}
}

// # Identity

// Current returns the cached identity and whether the user is signed in.
//
// A corrupt payload is cleared and replaced by the anonymous default; login
// state is then reported as absent so navigation falls back to the login
// surface.
func (cache *Cache) Current(ctx context.Context) (Identity, bool) {
	var identity Identity

	err := cache.kv.Get(ctx, constants.StorageKeyIdentity, &identity)
	switch {
	case err == nil:
		return identity, true

	case errors.Is(err, storage.ErrNotFound):
		return Anonymous(), false

	case errors.Is(err, storage.ErrCorrupt):
		cache.logger.Warn("identity_payload_corrupt_cleared",
			slog.Any("error", apperr.CorruptState(constants.StorageKeyIdentity, err)))
		if rerr := cache.kv.Remove(ctx, constants.StorageKeyIdentity); rerr != nil {
			cache.logger.Error("identity_clear_failed", slog.Any("error", rerr))
		}
		return Anonymous(), false

	default:
		// A backend read failure is indistinguishable from absence for
		// navigation purposes, but the entry is left untouched.
		cache.logger.Error("identity_read_failed", slog.Any("error", err))
		return Anonymous(), false
	}
}

// RequireAuthenticated returns the cached identity or [ErrUnauthenticated].
// The check runs once per surface mount, not continuously.
func (cache *Cache) RequireAuthenticated(ctx context.Context) (Identity, error) {
	identity, ok := cache.Current(ctx)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	return identity, nil
}

// RequireRole returns the cached identity when it carries exactly the
// required role. Absent identity yields [ErrUnauthenticated]; a role mismatch
// yields [ErrRoleMismatch]. Either way the caller redirects to login.
func (cache *Cache) RequireRole(ctx context.Context, role string) (Identity, error) {
	identity, err := cache.RequireAuthenticated(ctx)
	if err != nil {
		return Identity{}, err
	}
	if identity.Role != role {
		return Identity{}, ErrRoleMismatch
	}
	return identity, nil
}

// Login caches the given identity and appends a session record for it.
// Identity creation itself (credential verification) is external to this
// client; this only records the result.
func (cache *Cache) Login(ctx context.Context, identity Identity) error {
	if err := cache.kv.Set(ctx, constants.StorageKeyIdentity, identity); err != nil {
		return fmt.Errorf("session_identity_persist_failed: %w", err)
	}

	records := cache.Records(ctx)
	records = append(records, Record{
		ID:        newRecordID(),
		Email:     identity.Email,
		LoginTime: cache.now().Format(time.RFC3339),
		Status:    "Active",
	})

	if err := cache.kv.Set(ctx, constants.StorageKeySessions, records); err != nil {
		return fmt.Errorf("session_records_persist_failed: %w", err)
	}

	cache.logger.Info("user_signed_in", slog.String("email", identity.Email))
	return nil
}

// Logout clears the cached identity and the mocked session list. It is a
// pure local operation with no remote call and never fails; storage errors
// are logged and swallowed. The caller then redirects to the login surface.
func (cache *Cache) Logout(ctx context.Context) {
	if err := cache.kv.Remove(ctx, constants.StorageKeyIdentity); err != nil {
		cache.logger.Error("logout_identity_clear_failed", slog.Any("error", err))
	}
	if err := cache.kv.Remove(ctx, constants.StorageKeySessions); err != nil {
		cache.logger.Error("logout_sessions_clear_failed", slog.Any("error", err))
	}
	cache.logger.Info("user_signed_out")
}

// # Session Records (local mock)

// Records returns the locally persisted active-session list. Absence and
// corruption both degrade to an empty list; a corrupt list is cleared.
func (cache *Cache) Records(ctx context.Context) []Record {
	var records []Record

	err := cache.kv.Get(ctx, constants.StorageKeySessions, &records)
	switch {
	case err == nil:
		return records

	case errors.Is(err, storage.ErrNotFound):
		return nil

	case errors.Is(err, storage.ErrCorrupt):
		cache.logger.Warn("session_records_corrupt_cleared",
			slog.Any("error", apperr.CorruptState(constants.StorageKeySessions, err)))
		if rerr := cache.kv.Remove(ctx, constants.StorageKeySessions); rerr != nil {
			cache.logger.Error("session_records_clear_failed", slog.Any("error", rerr))
		}
		return nil

	default:
		cache.logger.Error("session_records_read_failed", slog.Any("error", err))
		return nil
	}
}

// RemoveRecord drops the record with the given id and re-persists the trimmed
// list. Purely local; the backend is never called.
func (cache *Cache) RemoveRecord(ctx context.Context, id string) error {
	records := cache.Records(ctx)

	trimmed := records[:0]
	for _, record := range records {
		if record.ID != id {
			trimmed = append(trimmed, record)
		}
	}

	if err := cache.kv.Set(ctx, constants.StorageKeySessions, trimmed); err != nil {
		return fmt.Errorf("session_records_persist_failed: %w", err)
	}
	return nil
}

// FormatDuration renders the elapsed wall-clock time since loginTime.
//
// # Returns
//   - "<n> mins" under 60 minutes.
//   - "<h>h <m>m" at or above 60 minutes.
//   - "Unknown" for a missing timestamp, "Invalid" for an unparsable one.
func (cache *Cache) FormatDuration(loginTime string) string {
	if loginTime == "" {
		return DurationUnknown
	}

	start, err := time.Parse(time.RFC3339, loginTime)
	if err != nil {
		return DurationInvalid
	}

	minutes := int(cache.now().Sub(start).Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d mins", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// newRecordID issues a time-sortable ID for a session record, degrading to a
// random UUID if v7 generation fails.
func newRecordID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
