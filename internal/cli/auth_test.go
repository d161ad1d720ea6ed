package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlineempire/cli/internal/models"
)

// fakeSession implements services.SessionService with scripted outcomes.
type fakeSession struct {
	session models.Session

	loginOK  bool
	loginErr error

	registerOK  bool
	registerErr error

	lastUsername string
	lastSecret   string
	lastEmail    string
	logouts      int
}

func (f *fakeSession) Restore(ctx context.Context) {}

func (f *fakeSession) Login(ctx context.Context, username string, secret []byte) (bool, error) {
	f.lastUsername = username
	f.lastSecret = string(secret)
	if f.loginOK {
		f.session = models.Session{
			Status: models.StatusAuthenticated,
			User:   &models.User{Username: username, Role: models.RoleStandard},
		}
	}
	return f.loginOK, f.loginErr
}

func (f *fakeSession) Register(ctx context.Context, username string, secret []byte, email string) (bool, error) {
	f.lastUsername = username
	f.lastSecret = string(secret)
	f.lastEmail = email
	if f.registerOK {
		f.session = models.Session{
			Status: models.StatusAuthenticated,
			User:   &models.User{Username: username, Role: models.RoleStandard},
		}
	}
	return f.registerOK, f.registerErr
}

func (f *fakeSession) Logout(ctx context.Context) {
	f.logouts++
	f.session = models.Session{Status: models.StatusAnonymous}
}

func (f *fakeSession) Current() models.Session { return f.session }

func newTestApp(sess *fakeSession, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		session: sess,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}, out
}

func stubPassword(t *testing.T, pw string, err error) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(pw), err }
	t.Cleanup(func() { readPassword = orig })
}

func TestLoginCommand_Success(t *testing.T) {
	stubPassword(t, "admin", nil)
	sess := &fakeSession{loginOK: true}
	app, out := newTestApp(sess, "admin\n")

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, "admin", sess.lastUsername)
	assert.Equal(t, "admin", sess.lastSecret)
	assert.Contains(t, out.String(), "Welcome back, admin!")
}

func TestLoginCommand_BadCredentials(t *testing.T) {
	stubPassword(t, "wrong", nil)
	sess := &fakeSession{loginOK: false}
	app, out := newTestApp(sess, "admin\n")

	require.NoError(t, app.Login(context.Background()))

	assert.Contains(t, out.String(), "Invalid username or password.")
}

func TestLoginCommand_StoreFault(t *testing.T) {
	stubPassword(t, "admin", nil)
	sess := &fakeSession{loginErr: errors.New("internal error")}
	app, out := newTestApp(sess, "admin\n")

	err := app.Login(context.Background())
	assert.Error(t, err)
	assert.Contains(t, out.String(), "Something went wrong")
}

func TestRegisterCommand_Success(t *testing.T) {
	stubPassword(t, "s3cret", nil)
	sess := &fakeSession{registerOK: true}
	app, out := newTestApp(sess, "newbie\nnewbie@example.com\n")

	require.NoError(t, app.Register(context.Background()))

	assert.Equal(t, "newbie", sess.lastUsername)
	assert.Equal(t, "newbie@example.com", sess.lastEmail)
	assert.Contains(t, out.String(), "Welcome aboard, newbie!")
}

func TestRegisterCommand_DuplicateUsername(t *testing.T) {
	stubPassword(t, "s3cret", nil)
	sess := &fakeSession{registerOK: false}
	app, out := newTestApp(sess, "admin\n\n")

	require.NoError(t, app.Register(context.Background()))

	assert.Contains(t, out.String(), "Registration failed")
}

func TestLogoutCommand(t *testing.T) {
	sess := &fakeSession{session: models.Session{
		Status: models.StatusAuthenticated,
		User:   &models.User{Username: "admin"},
	}}
	app, out := newTestApp(sess, "")

	require.NoError(t, app.Logout(context.Background()))
	require.NoError(t, app.Logout(context.Background()))

	assert.Equal(t, 2, sess.logouts)
	assert.Contains(t, out.String(), "Logged out.")
}

func TestWhoamiCommand(t *testing.T) {
	sess := &fakeSession{session: models.Session{
		Status: models.StatusAuthenticated,
		User: &models.User{
			Username:  "admin",
			Email:     "admin@skyline.example",
			Role:      models.RoleAdministrator,
			CreatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}}
	app, out := newTestApp(sess, "")

	require.NoError(t, app.Whoami(context.Background()))

	s := out.String()
	assert.Contains(t, s, "admin (Administrator) - SkyLine Airways")
	assert.Contains(t, s, "admin@skyline.example")
	assert.Contains(t, s, "Jan 15, 2025")
}

func TestWhoamiCommand_SignedOut(t *testing.T) {
	sess := &fakeSession{session: models.Session{Status: models.StatusAnonymous}}
	app, out := newTestApp(sess, "")

	require.NoError(t, app.Whoami(context.Background()))
	assert.Contains(t, out.String(), "Not signed in.")
}
