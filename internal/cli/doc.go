// Package cli provides the interactive Airline Empire command-line client.
//
// It wires configuration, the local account store, the session service, and
// an interactive REPL. On start the client tries to restore a previously
// persisted session; until a user is signed in only the authentication
// commands are reachable, afterwards the game views (dashboard, network,
// fleet, staff, research, finances, marketing, company, shop, alliance,
// chat) become available.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
