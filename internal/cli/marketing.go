package cli

import (
	"context"
	"fmt"
)

// Marketing renders campaign KPIs and the campaign table.
func (a *App) Marketing(ctx context.Context) error {
	section(a.out, "Marketing Dashboard")

	tw := newTable(a.out)
	for _, k := range a.world.MarketingKPIs() {
		fmt.Fprintf(tw, "%s\t%s\t%s vs last month\n", k.Label, k.Value, k.Change)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, "Campaigns")
	tw = newTable(a.out)
	fmt.Fprintln(tw, "CAMPAIGN\tSTATUS\tBUDGET\tSPENT\tIMPRESSIONS\tCLICKS\tCONVERSIONS\tROI")
	for _, c := range a.world.Campaigns() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, c.Status, c.Budget, c.Spent, c.Impressions, c.Clicks, c.Conversions, c.ROI)
	}
	return tw.Flush()
}
