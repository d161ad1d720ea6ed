package cli

import (
	"context"
	"fmt"

	"github.com/airlineempire/cli/internal/game"
)

// Fleet renders the fleet table, optionally filtered by status
// (operational, maintenance, scheduled).
func (a *App) Fleet(ctx context.Context, status string) error {
	section(a.out, "Fleet Management")

	fleet := a.world.FleetByStatus(game.AircraftStatus(status))
	if len(fleet) == 0 {
		fmt.Fprintf(a.out, "No aircraft with status %q. Known statuses: operational, maintenance, scheduled.\n", status)
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "MODEL\tREG\tSTATUS\tROUTE\tUTIL\tEFF\tREVENUE\tNEXT MAINT")
	for _, ac := range fleet {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			ac.Model, ac.Registration, ac.Status, ac.Route,
			ac.Utilization, ac.Efficiency, ac.Revenue, ac.NextMaintenance)
	}
	return tw.Flush()
}
