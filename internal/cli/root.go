package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/airlineempire/cli/internal/storage"
)

// Root restores the persisted session and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Airline Empire (type 'help' for commands)")

	a.session.Restore(ctx)

	if sess := a.Session(); sess.Authenticated() {
		printlnFn(fmt.Sprintf("Welcome back, %s!", sess.User.Username))
	} else {
		printlnFn(fmt.Sprintf("Demo credentials: username %q, password %q",
			storage.DemoUsername, storage.DemoSecret))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}
