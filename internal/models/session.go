package models

// SessionStatus is the state of the authentication state machine.
type SessionStatus string

const (
	// StatusIdle is the zero state before Restore has been started.
	StatusIdle SessionStatus = "idle"
	// StatusLoading is transient: Restore or a login/register attempt is in
	// flight.
	StatusLoading SessionStatus = "loading"
	// StatusAnonymous means no user is signed in.
	StatusAnonymous SessionStatus = "anonymous"
	// StatusAuthenticated means User is set and resolvable in the store.
	StatusAuthenticated SessionStatus = "authenticated"
)

// Session is a consistent snapshot of the authentication state. User is nil
// unless Status is StatusAuthenticated.
type Session struct {
	Status SessionStatus
	User   *User
}

// Authenticated reports whether the snapshot carries a signed-in user.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}
