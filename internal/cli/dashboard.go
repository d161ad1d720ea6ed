package cli

import (
	"context"
	"fmt"
)

// Dashboard renders the headline stats, fleet performance, alerts, and the
// recent-activity feed.
func (a *App) Dashboard(ctx context.Context) error {
	section(a.out, "Airline Empire Dashboard")

	tw := newTable(a.out)
	for _, s := range a.world.DashboardStats() {
		fmt.Fprintf(tw, "%s\t%s\n", s.Label, s.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, "Fleet Performance")
	tw = newTable(a.out)
	for _, s := range a.world.FleetPerformance() {
		fmt.Fprintf(tw, "%s\t%s\n", s.Label, s.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, "Recent Alerts")
	for _, al := range a.world.Alerts() {
		fmt.Fprintf(a.out, "[%s] %s\n", al.Level, al.Message)
	}

	section(a.out, "Recent Activity")
	tw = newTable(a.out)
	for _, act := range a.world.RecentActivity() {
		fmt.Fprintf(tw, "%s\t%s\n", act.Text, act.Time)
	}
	return tw.Flush()
}
