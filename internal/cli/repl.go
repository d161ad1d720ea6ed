package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/airlineempire/cli/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Session() models.Session
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Network(ctx context.Context) error
	Fleet(ctx context.Context, status string) error
	Staff(ctx context.Context) error
	Research(ctx context.Context) error
	Finances(ctx context.Context) error
	Marketing(ctx context.Context) error
	Company(ctx context.Context) error
	Shop(ctx context.Context) error
	Alliances(ctx context.Context) error
	Chat(ctx context.Context) error
	Say(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, help, exit"
	helpSignedIn  = "Available commands: dashboard, network, fleet [status], staff, research, " +
		"finances, marketing, company, shop, alliance, chat, say, whoami, logout, exit"
)

// protectedCommands is the set of commands only reachable once authenticated.
var protectedCommands = map[string]struct{}{
	"dashboard": {}, "network": {}, "routes": {}, "fleet": {}, "staff": {},
	"research": {}, "finances": {}, "marketing": {}, "company": {}, "shop": {},
	"alliance": {}, "chat": {}, "say": {}, "whoami": {}, "logout": {},
}

// runREPL starts a read-eval-print loop for the Airline Empire CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The session snapshot gates the
// dispatch: while the session is loading nothing but waiting is possible,
// while anonymous only the authentication commands are reachable, and the
// game views never run (or touch any state) without a signed-in user.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		sess := a.Session()
		printlnFn(fmt.Sprintf("ae> %s > ", statusLine(sess)))
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

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if sess.Status == models.StatusLoading {
			printlnFn("Please wait...")
			continue
		}

		if !sess.Authenticated() {
			switch cmd {
			case "help":
				printlnFn(helpAnonymous)
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				if _, protected := protectedCommands[cmd]; protected {
					printlnFn("Please log in first.")
				} else {
					printlnFn("Unknown command:", cmd)
				}
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpSignedIn)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "network", "routes":
			_ = a.Network(ctx)

		case "fleet":
			status := ""
			if len(args) > 0 {
				status = args[0]
			}
			_ = a.Fleet(ctx, status)

		case "staff":
			_ = a.Staff(ctx)

		case "research":
			_ = a.Research(ctx)

		case "finances":
			_ = a.Finances(ctx)

		case "marketing":
			_ = a.Marketing(ctx)

		case "company":
			_ = a.Company(ctx)

		case "shop":
			_ = a.Shop(ctx)

		case "alliance":
			_ = a.Alliances(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "say":
			_ = a.Say(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "register", "login":
			printlnFn("Already signed in. Use 'logout' first.")

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// statusLine renders the prompt segment describing the session.
func statusLine(sess models.Session) string {
	switch {
	case sess.Status == models.StatusLoading:
		return "(loading)"
	case sess.Authenticated():
		return fmt.Sprintf("(%s, %s)", sess.User.Username, sess.User.Role.Label())
	default:
		return "(signed out)"
	}
}
