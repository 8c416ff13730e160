package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Whoami(ctx context.Context) error
	Tenants(ctx context.Context, args []string) error
	Staff(ctx context.Context, args []string) error
	Specialties(ctx context.Context, args []string) error
	Symptoms(ctx context.Context, args []string) error
	Qualifications(ctx context.Context, args []string) error
	Availability(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Appointments(ctx context.Context, args []string) error
	Pharmacies(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	Verify(ctx context.Context, args []string) error
	QueueWatch(ctx context.Context) error
	Prefs(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL starts the read–eval–print loop of the console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("eVizor console (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("evz %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, tenants, staff, specialties, symptoms," +
					" qualifications, availability, profile, appointments, pharmacies, users," +
					" verify, queue, prefs, logout, exit")
				printlnFn("Resource commands accept: list [search], add, update <id>, delete <id>")
			} else {
				printlnFn("Available commands: login, forgot, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "tenants":
			_ = a.Tenants(ctx, args)

		case "staff":
			_ = a.Staff(ctx, args)

		case "specialties":
			_ = a.Specialties(ctx, args)

		case "symptoms":
			_ = a.Symptoms(ctx, args)

		case "qualifications":
			_ = a.Qualifications(ctx, args)

		case "availability":
			_ = a.Availability(ctx, args)

		case "profile":
			_ = a.Profile(ctx, args)

		case "appointments":
			_ = a.Appointments(ctx, args)

		case "pharmacies":
			_ = a.Pharmacies(ctx, args)

		case "users":
			_ = a.Users(ctx, args)

		case "verify":
			_ = a.Verify(ctx, args)

		case "queue":
			_ = a.QueueWatch(ctx)

		case "prefs":
			_ = a.Prefs(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
