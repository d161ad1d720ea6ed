// Package users implements the local account store. It is the only writer of
// user records in the client; uniqueness of usernames is enforced at this
// boundary, not in the callers.
package users

import (
	"context"

	"github.com/airlineempire/cli/internal/models"
)

type Repository interface {
	// FindByUsername looks up a user by exact, case-sensitive username.
	// Returns common.ErrNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByID looks up a user by id. Returns common.ErrNotFound if the id
	// does not resolve.
	FindByID(ctx context.Context, id string) (*models.User, error)

	// Create inserts a new user record. Returns common.ErrAlreadyExists if
	// the username is taken; the existing record is left untouched.
	Create(ctx context.Context, u *models.User) error
}
