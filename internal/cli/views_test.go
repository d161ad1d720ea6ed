package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlineempire/cli/internal/game"
	"github.com/airlineempire/cli/internal/models"
)

func newViewApp(sess *fakeSession, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		session: sess,
		world:   game.NewCatalog(),
		chat:    game.NewChatRoom(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}, out
}

func TestDashboardView(t *testing.T) {
	app, out := newViewApp(&fakeSession{}, "")

	require.NoError(t, app.Dashboard(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Airline Empire Dashboard")
	assert.Contains(t, s, "Fleet Performance")
	assert.Contains(t, s, "Recent Alerts")
	assert.Contains(t, s, "Recent Activity")
}

func TestFleetView_FilterByStatus(t *testing.T) {
	app, out := newViewApp(&fakeSession{}, "")

	require.NoError(t, app.Fleet(context.Background(), "maintenance"))

	s := out.String()
	assert.Contains(t, s, "N738AE")
	assert.NotContains(t, s, "N777AE")
}

func TestFleetView_UnknownStatus(t *testing.T) {
	app, out := newViewApp(&fakeSession{}, "")

	require.NoError(t, app.Fleet(context.Background(), "underwater"))

	assert.Contains(t, out.String(), "No aircraft with status")
}

func TestSay_PostsUnderSignedInUser(t *testing.T) {
	sess := &fakeSession{session: models.Session{
		Status: models.StatusAuthenticated,
		User:   &models.User{Username: "tester"},
	}}
	app, out := newViewApp(sess, "hello from the cockpit\n")

	require.NoError(t, app.Say(context.Background()))
	assert.Contains(t, out.String(), "Sent.")

	out.Reset()
	require.NoError(t, app.Chat(context.Background()))
	assert.Contains(t, out.String(), "tester")
	assert.Contains(t, out.String(), "hello from the cockpit")
}
