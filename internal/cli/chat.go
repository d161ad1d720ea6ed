package cli

import (
	"context"
	"fmt"
)

// Chat renders the global chat feed.
func (a *App) Chat(ctx context.Context) error {
	section(a.out, "Global Chat")

	for _, m := range a.chat.Messages() {
		badge := ""
		if m.Badge != "" {
			badge = fmt.Sprintf(" [%s]", m.Badge)
		}
		fmt.Fprintf(a.out, "%s%s (%s): %s\n", m.User, badge, m.Time, m.Content)
	}
	return nil
}

// Say prompts for a message and posts it to the local chat feed under the
// signed-in username.
func (a *App) Say(ctx context.Context) error {
	sess := a.Session()
	if !sess.Authenticated() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	msg, err := getSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	if msg == "" {
		return nil
	}

	a.chat.Post(sess.User.Username, msg)
	fmt.Fprintln(a.out, "Sent.")
	return nil
}
