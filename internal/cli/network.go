package cli

import (
	"context"
	"fmt"
)

// Network renders the route network table.
func (a *App) Network(ctx context.Context) error {
	section(a.out, "Route Network")

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ROUTE\tAIRCRAFT\tSTATUS\tPAX\tLOAD\tREVENUE\tDURATION")
	for _, r := range a.world.Routes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Aircraft, r.Status, r.Passengers, r.Load, r.Revenue, r.Duration)
	}
	return tw.Flush()
}
