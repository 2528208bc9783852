// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package ui renders the booking client's terminal surface.

The shell is an event-driven command loop: each input line is one UI
callback. There are no background workers; backend calls run inline and a
late response for a surface the user already left is simply discarded.

Navigation is gated by the session cache: an unauthenticated user lands on
the login surface, and the administrator dashboard additionally requires the
cached admin role flag. Destructive actions prompt for an explicit
confirmation before any request is issued.
*/
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/swahilipothub/hubclient/internal/admin"
	"github.com/swahilipothub/hubclient/internal/booking"
	"github.com/swahilipothub/hubclient/internal/platform/apperr"
	"github.com/swahilipothub/hubclient/internal/prefs"
	"github.com/swahilipothub/hubclient/internal/session"
)

// Shell drives the whole terminal UI. It owns the input scanner, the output
// writer, and the view components it navigates between.
type Shell struct {
	input   *bufio.Scanner
	output  io.Writer
	surface *Surface

	prefs    *prefs.Store
	sessions *session.Cache
	sync     *admin.Synchronizer
	today    func() string

	logger *slog.Logger
}

// NewShell wires the terminal surface. today returns the active room-query
// date (YYYY-MM-DD) and may be nil for the wall-clock default.
func NewShell(
	input io.Reader,
	output io.Writer,
	surface *Surface,
	preferences *prefs.Store,
	sessions *session.Cache,
	synchronizer *admin.Synchronizer,
	today func() string,
	logger *slog.Logger,
) *Shell {
	return &Shell{
		input:    bufio.NewScanner(input),
		output:   output,
		surface:  surface,
		prefs:    preferences,
		sessions: sessions,
		sync:     synchronizer,
		today:    today,
		logger:   logger,
	}
}

// Run is the top-level navigation loop. It returns when the user quits or
// the input stream ends.
func (shell *Shell) Run(ctx context.Context) error {
	// Restore persisted preferences first so the surface flag and language
	// are right before anything renders.
	if _, err := shell.prefs.Current(ctx); err != nil {
		return fmt.Errorf("ui_preferences_restore_failed: %w", err)
	}

	for {
		// Gate: unauthenticated → login surface. Checked once per mount.
		if _, err := shell.sessions.RequireAuthenticated(ctx); err != nil {
			if !shell.loginSurface(ctx) {
				return nil
			}
			continue
		}

		if !shell.homeSurface(ctx) {
			return nil
		}
	}
}

// # Login Surface

// loginSurface collects an identity. Returns false when input ended.
//
// Credential verification is outside this client's scope; the identity is
// cached locally and a mocked session record is appended, matching the
// original sign-in flow.
func (shell *Shell) loginSurface(ctx context.Context) bool {
	shell.printf("\n== %s ==\n", shell.prefs.Translate(ctx, "welcomeBack"))
	shell.printf("%s\n", shell.prefs.Translate(ctx, "signInToAccount"))

	shell.printf("%s: ", "Full name")
	fullName, ok := shell.readLine()
	if !ok {
		return false
	}
	if strings.TrimSpace(fullName) == "" {
		fullName = "User"
	}

	shell.printf("%s: ", shell.prefs.Translate(ctx, "email"))
	email, ok := shell.readLine()
	if !ok {
		return false
	}

	shell.printf("Role [member/admin]: ")
	role, ok := shell.readLine()
	if !ok {
		return false
	}

	identity := session.Identity{
		FullName: strings.TrimSpace(fullName),
		Email:    strings.TrimSpace(email),
		Role:     strings.TrimSpace(role),
	}
	if err := shell.sessions.Login(ctx, identity); err != nil {
		shell.notifyError(err)
		return true
	}

	shell.printf("%s\n", shell.prefs.Translate(ctx, "confirmed"))
	return true
}

// # Home Surface

// homeSurface is the navigation chrome: preference toggles, identity info,
// and the entry point to the admin dashboard. Returns false to quit.
func (shell *Shell) homeSurface(ctx context.Context) bool {
	identity, _ := shell.sessions.Current(ctx)
	shell.printf("\n== %s == [%s] %s <%s>\n",
		shell.prefs.Translate(ctx, "bookingSystem"),
		shell.surface.Indicator(),
		identity.FullName,
		identity.Email,
	)
	shell.printf("commands: theme | lang | admin | logout | quit\n")

	for {
		shell.printf("[%s]> ", shell.surface.Indicator())
		line, ok := shell.readLine()
		if !ok {
			return false
		}

		switch strings.TrimSpace(line) {
		case "":
			continue

		case "theme":
			theme, err := shell.prefs.ToggleTheme(ctx)
			if err != nil {
				shell.notifyError(err)
				continue
			}
			label := "lightMode"
			if theme == prefs.ThemeDark {
				label = "darkMode"
			}
			shell.printf("%s\n", shell.prefs.Translate(ctx, label))

		case "lang":
			lang, err := shell.prefs.ToggleLanguage(ctx)
			if err != nil {
				shell.notifyError(err)
				continue
			}
			shell.printf("%s: %s\n", shell.prefs.Translate(ctx, "language"), lang)

		case "admin":
			if _, err := shell.sessions.RequireRole(ctx, session.RoleAdmin); err != nil {
				// Absent or non-admin identity: redirect to the login entry
				// point. The identity itself is left alone.
				if errors.Is(err, session.ErrRoleMismatch) {
					shell.logger.Warn("admin_surface_denied")
				}
				return shell.loginSurface(ctx)
			}
			if !shell.adminSurface(ctx) {
				return false
			}
			return true

		case "logout":
			shell.sessions.Logout(ctx)
			shell.printf("%s\n", shell.prefs.Translate(ctx, "logout"))
			return true

		case "quit", "exit":
			return false

		default:
			shell.printf("commands: theme | lang | admin | logout | quit\n")
		}
	}
}

// # Admin Surface

// adminSurface mounts the administrator dashboard: it loads the three
// collections once, then serves dashboard commands. Returns false to quit
// the application entirely.
func (shell *Shell) adminSurface(ctx context.Context) bool {
	date := shell.today()
	shell.printf("\n== Admin Control Panel ==\n")
	shell.printf("%s\n", shell.prefs.Translate(ctx, "checkingAvailability"))

	shell.sync.LoadAll(ctx, date)
	if shell.sync.State() == admin.StateError {
		shell.printf("%s - %s\n", apperr.UserMessage(shell.sync.Err()), shell.prefs.Translate(ctx, "tryAgain"))
	}

	shell.printf("commands: rooms | bookings | sessions | load <date> | add-room <name>;<space>;<capacity> | delete-room <id> | approve <id> | reject <id> | disconnect <id> | back\n")

	for {
		shell.printf("admin[%s]> ", shell.surface.Indicator())
		line, ok := shell.readLine()
		if !ok {
			return false
		}

		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "rooms":
			shell.renderRooms(ctx)

		case "bookings":
			shell.renderBookings(ctx)

		case "sessions":
			shell.renderSessions(ctx)

		case "load":
			if len(fields) < 2 {
				shell.printf("usage: load <YYYY-MM-DD>\n")
				continue
			}
			shell.sync.LoadAll(ctx, fields[1])
			if shell.sync.State() == admin.StateError {
				shell.printf("%s\n", apperr.UserMessage(shell.sync.Err()))
				continue
			}
			shell.printf("%s %s\n", shell.prefs.Translate(ctx, "forDate"), fields[1])

		case "add-room":
			shell.addRoom(ctx, strings.TrimSpace(strings.TrimPrefix(line, "add-room")))

		case "delete-room":
			if len(fields) < 2 {
				shell.printf("usage: delete-room <id>\n")
				continue
			}
			shell.deleteRoom(ctx, fields[1])

		case "approve":
			if len(fields) < 2 {
				shell.printf("usage: approve <id>\n")
				continue
			}
			shell.decideBooking(ctx, fields[1], booking.StatusConfirmed)

		case "reject":
			if len(fields) < 2 {
				shell.printf("usage: reject <id>\n")
				continue
			}
			shell.decideBooking(ctx, fields[1], booking.StatusRejected)

		case "disconnect":
			if len(fields) < 2 {
				shell.printf("usage: disconnect <id>\n")
				continue
			}
			shell.disconnectSession(ctx, fields[1])

		case "back":
			return true

		case "quit", "exit":
			return false

		default:
			shell.printf("commands: rooms | bookings | sessions | load <date> | add-room <name>;<space>;<capacity> | delete-room <id> | approve <id> | reject <id> | disconnect <id> | back\n")
		}
	}
}

// addRoom parses "name;space;capacity", submits the creation request, and on
// success the new room is already part of the view state (the form closes).
func (shell *Shell) addRoom(ctx context.Context, form string) {
	parts := strings.SplitN(form, ";", 3)
	if len(parts) != 3 {
		shell.printf("usage: add-room <name>;<space>;<capacity>\n")
		return
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		shell.printf("usage: add-room <name>;<space>;<capacity>\n")
		return
	}

	room, err := shell.sync.CreateRoom(ctx, booking.RoomInput{
		Name:     strings.TrimSpace(parts[0]),
		Space:    strings.TrimSpace(parts[1]),
		Capacity: capacity,
	})
	if err != nil {
		shell.notifyError(err)
		return
	}

	shell.printf("%s: %s (#%d)\n", shell.prefs.Translate(ctx, "confirmed"), room.Name, room.ID)
}

// deleteRoom asks for confirmation before issuing the destructive call.
func (shell *Shell) deleteRoom(ctx context.Context, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		shell.printf("usage: delete-room <id>\n")
		return
	}

	if !shell.confirm("Are you sure you want to delete this room? This will also delete all its bookings.") {
		return
	}

	if err := shell.sync.DeleteRoom(ctx, id); err != nil {
		shell.notifyError(err)
		return
	}
	shell.renderRooms(ctx)
}

// decideBooking asks for confirmation, then requests the status transition.
func (shell *Shell) decideBooking(ctx context.Context, rawID string, status booking.Status) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		shell.printf("usage: approve|reject <id>\n")
		return
	}

	action := "approve"
	if status == booking.StatusRejected {
		action = "reject"
	}
	if !shell.confirm(fmt.Sprintf("Are you sure you want to %s this booking?", action)) {
		return
	}

	if err := shell.sync.UpdateBookingStatus(ctx, id, status); err != nil {
		shell.notifyError(err)
		return
	}
	shell.printf("Booking %sd successfully and user notified!\n", action)
}

// disconnectSession removes a mocked session record after confirmation.
func (shell *Shell) disconnectSession(ctx context.Context, id string) {
	if !shell.confirm("Disconnect this user session?") {
		return
	}
	if err := shell.sync.RemoveSessionRecord(ctx, id); err != nil {
		shell.notifyError(err)
		return
	}
	shell.renderSessions(ctx)
}

// # Rendering

func (shell *Shell) renderRooms(ctx context.Context) {
	rooms := shell.sync.Rooms()
	if len(rooms) == 0 {
		shell.printf("%s\n", shell.prefs.Translate(ctx, "noRoomsFound"))
		return
	}

	table := tabwriter.NewWriter(shell.output, 0, 4, 2, ' ', 0)
	fmt.Fprintf(table, "ID\tRoom Name\tSpace\t%s\tStatus\n", shell.prefs.Translate(ctx, "capacity"))
	for _, room := range rooms {
		fmt.Fprintf(table, "%d\t%s\t%s\t%d %s\t%s\n",
			room.ID, room.Name, room.Space,
			room.Capacity, shell.prefs.Translate(ctx, "people"),
			shell.translateStatus(ctx, room.Status),
		)
	}
	_ = table.Flush()
}

func (shell *Shell) renderBookings(ctx context.Context) {
	bookings := shell.sync.Bookings()
	if len(bookings) == 0 {
		shell.printf("No bookings or reservations found.\n")
		return
	}

	table := tabwriter.NewWriter(shell.output, 0, 4, 2, ' ', 0)
	fmt.Fprintf(table, "ID\tUser\tRoom\t%s\tTime\tType\tStatus\n", shell.prefs.Translate(ctx, "date"))
	for _, entry := range bookings {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s - %s\t%s\t%s\n",
			entry.ID, entry.UserName, entry.RoomName,
			entry.BookingDate, entry.StartTime, entry.EndTime,
			shell.prefs.Translate(ctx, string(entry.Type)), entry.Status,
		)
	}
	_ = table.Flush()
}

func (shell *Shell) renderSessions(ctx context.Context) {
	records := shell.sync.Sessions()
	if len(records) == 0 {
		shell.printf("No active user sessions found.\n")
		return
	}

	table := tabwriter.NewWriter(shell.output, 0, 4, 2, ' ', 0)
	fmt.Fprintf(table, "ID\tUser Email\tLogin Time\t%s\tStatus\n", shell.prefs.Translate(ctx, "duration"))
	for _, record := range records {
		loginTime := record.LoginTime
		if loginTime == "" {
			loginTime = "N/A"
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n",
			record.ID, record.Email, loginTime,
			shell.sync.FormatSessionDuration(record.LoginTime), record.Status,
		)
	}
	_ = table.Flush()
}

// translateStatus maps a backend room status onto its localized label,
// leaving unknown statuses verbatim the way the resolver leaves orphan keys.
func (shell *Shell) translateStatus(ctx context.Context, status string) string {
	switch status {
	case booking.RoomAvailable:
		return shell.prefs.Translate(ctx, "available")
	case booking.RoomReserved:
		return shell.prefs.Translate(ctx, "reserved")
	case booking.RoomBooked:
		return shell.prefs.Translate(ctx, "booked")
	default:
		return status
	}
}

// # Input Helpers

// confirm implements the destructive-action contract: the request is issued
// only after an explicit y/yes.
func (shell *Shell) confirm(prompt string) bool {
	shell.printf("%s [y/N]: ", prompt)
	line, ok := shell.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (shell *Shell) readLine() (string, bool) {
	if !shell.input.Scan() {
		return "", false
	}
	return shell.input.Text(), true
}

func (shell *Shell) printf(format string, args ...any) {
	fmt.Fprintf(shell.output, format, args...)
}

// notifyError renders the user-safe notice for err. Causes stay in the log.
func (shell *Shell) notifyError(err error) {
	shell.logger.Error("ui_operation_failed", slog.Any("error", err))
	shell.printf("%s\n", apperr.UserMessage(err))
}
