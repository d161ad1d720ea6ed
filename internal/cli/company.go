package cli

import (
	"context"
	"fmt"
)

// Company renders the company profile and the achievement list.
func (a *App) Company(ctx context.Context) error {
	p := a.world.CompanyProfile()

	section(a.out, fmt.Sprintf("%s - Company Profile", p.Airline))

	tw := newTable(a.out)
	fmt.Fprintf(tw, "Founded\t%s\n", p.Founded)
	fmt.Fprintf(tw, "Headquarters\t%s\n", p.Headquarters)
	fmt.Fprintf(tw, "Company Level\t%d\n", p.Level)
	fmt.Fprintf(tw, "Reputation\t%s\n", p.Reputation)
	fmt.Fprintf(tw, "Safety Rating\t%s\n", p.SafetyRating)
	fmt.Fprintf(tw, "Passengers Carried\t%s\n", p.Passengers)
	fmt.Fprintf(tw, "Destinations\t%d\n", p.Destinations)
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, "Achievements")
	tw = newTable(a.out)
	for _, ach := range a.world.Achievements() {
		fmt.Fprintf(tw, "%s\t%s\n", ach.Title, ach.Date)
	}
	return tw.Flush()
}
