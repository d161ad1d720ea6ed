// Package models holds the data types shared by the repositories, the session
// service, and the CLI.
package models

import "time"

// Role is the closed set of account roles. It drives display labels only;
// there is no authorization gating behind it.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleStandard      Role = "standard"
)

// Label returns the human-readable form shown in the header line.
func (r Role) Label() string {
	if r == RoleAdministrator {
		return "Administrator"
	}
	return "Pilot"
}

// User is a locally stored account record. Username is unique and immutable;
// lookups are exact and case-sensitive. Secrets are never stored: Salt and
// Verifier hold the argon2id-based verifier produced by cryptox.
type User struct {
	ID        string
	Username  string
	Salt      []byte
	Verifier  []byte
	Email     string
	Role      Role
	CreatedAt time.Time
}
