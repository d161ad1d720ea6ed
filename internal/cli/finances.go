package cli

import (
	"context"
	"fmt"
)

// Finances renders the monthly expense breakdown and the transaction feed.
func (a *App) Finances(ctx context.Context) error {
	section(a.out, "Financial Overview")

	tw := newTable(a.out)
	fmt.Fprintln(tw, "CATEGORY\tAMOUNT\tSHARE")
	for _, e := range a.world.Expenses() {
		fmt.Fprintf(tw, "%s\t%s\t%d%%\n", e.Category, e.Amount, e.Percentage)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, "Recent Transactions")
	tw = newTable(a.out)
	fmt.Fprintln(tw, "DESCRIPTION\tDATE\tAMOUNT")
	for _, t := range a.world.RecentTransactions() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Description, t.Date, t.Amount)
	}
	return tw.Flush()
}
