package cli

import (
	"context"
	"fmt"

	"github.com/airlineempire/cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate against
// the local account store.
//
// Unknown usernames and wrong passwords produce the same message. The
// password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.session.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, "Something went wrong, please try again.")
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Invalid username or password.")
		return nil
	}

	sess := a.Session()
	fmt.Fprintf(a.out, "Welcome back, %s!\n", sess.User.Username)
	return nil
}

// Register prompts for a username, an optional email, and a password, and
// attempts to create a new account. A successful registration signs the new
// user in immediately.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email (optional, press Enter to skip)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.session.Register(ctx, username, password, email)
	if err != nil {
		fmt.Fprintln(a.out, "Something went wrong, please try again.")
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Registration failed: empty input or the username is already taken.")
		return nil
	}

	fmt.Fprintf(a.out, "Account created. Welcome aboard, %s!\n", username)
	return nil
}

// Logout clears the session. Safe to call when already signed out.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the signed-in account details.
func (a *App) Whoami(ctx context.Context) error {
	sess := a.Session()
	if !sess.Authenticated() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	u := sess.User
	fmt.Fprintf(a.out, "%s (%s) - SkyLine Airways\n", u.Username, u.Role.Label())
	if u.Email != "" {
		fmt.Fprintf(a.out, "Email: %s\n", u.Email)
	}
	fmt.Fprintf(a.out, "Member since: %s\n", u.CreatedAt.Format("Jan 2, 2006"))
	return nil
}
